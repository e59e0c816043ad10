// Package engine runs the month-by-month amortization recurrence for a
// single rate path: fixed, variable or mixed, with optional capital
// injections and reduce-payment / reduce-term re-amortization policies.
package engine

import (
	"errors"
	"fmt"
	"math"

	"MortgageLab/internal/formula"
	"MortgageLab/internal/model"
	"MortgageLab/internal/rates"
)

// ErrInvalidInput is returned for malformed loan terms or injections
// before any simulation work begins.
var ErrInvalidInput = errors.New("invalid input")

// Run amortizes the loan month by month under the given rate schedule and
// returns the resulting schedule of records. The loop is bounded by the
// nominal term or the schedule horizon, whichever is shorter, and stops
// early once the principal reaches zero.
//
// An injection larger than the outstanding principal is clamped to it,
// never an error. A payment that fails to cover a month's interest aborts
// the run with formula.ErrPaymentTooLow.
func Run(terms model.LoanTerms, rs rates.Schedule, injections []model.Injection) (model.Schedule, error) {
	if err := validate(terms, injections); err != nil {
		return nil, err
	}

	months := terms.TermMonths
	if h := rs.Horizon(); h > 0 && h < months {
		months = h
	}

	payment, err := formula.Payment(terms.Principal, rs.RateAt(1), terms.TermMonths)
	if err != nil {
		return nil, err
	}

	var (
		schedule  model.Schedule
		pending   = terms.Principal
		remaining = terms.TermMonths
		nominal   = terms.TermMonths
		policy    = model.PolicyNone
	)

	for month := 1; month <= months; month++ {
		if pending <= 0 || remaining <= 0 {
			break
		}

		rate := rs.RateAt(month)

		if rs.RecomputeAt(month) {
			payment, err = formula.Payment(pending, rate, remaining)
			if err != nil {
				return nil, fmt.Errorf("month %d: %w", month, err)
			}
		}

		inj, applied := injectionFor(injections, month)
		if applied > pending {
			applied = pending // clamp, never drive the balance negative
		}
		pending -= applied

		if pending <= 0 {
			schedule = append(schedule, model.MonthRecord{
				Month:     month,
				Rate:      rate,
				Injection: applied,
			})
			pending = 0
			break
		}

		interest := formula.MonthlyInterest(pending, rate)
		if payment < interest {
			return nil, fmt.Errorf("month %d: payment %.2f vs interest %.2f: %w",
				month, payment, interest, formula.ErrPaymentTooLow)
		}
		principal := math.Min(payment-interest, pending)

		schedule = append(schedule, model.MonthRecord{
			Month:     month,
			Rate:      rate,
			Pending:   pending,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Injection: applied,
		})

		pending -= principal
		remaining--

		// Re-derive payment or term after an injection, or after an
		// explicit policy switch, using the rate in force this month.
		if (applied > 0 || (inj != nil && inj.Policy != model.PolicyNone)) && pending > 0 {
			if inj.Policy != model.PolicyNone {
				policy = inj.Policy
			}
			switch policy {
			case model.PolicyReducePayment:
				left := nominal - month
				if left < 1 {
					left = 1
				}
				payment, err = formula.Payment(pending, rate, left)
				if err != nil {
					return nil, fmt.Errorf("month %d: %w", month, err)
				}
			case model.PolicyReduceTerm:
				remaining, err = formula.ImpliedTerm(pending, rate, payment)
				if err != nil {
					return nil, fmt.Errorf("month %d: %w", month, err)
				}
				nominal = month + remaining
			}
		}
	}

	return schedule, nil
}

// injectionFor returns the injection scheduled for this month, if any, and
// its amount. With duplicate months the last entry wins; deduplication is
// the caller's responsibility.
func injectionFor(injections []model.Injection, month int) (*model.Injection, float64) {
	var found *model.Injection
	for i := range injections {
		if injections[i].Month == month {
			found = &injections[i]
		}
	}
	if found == nil {
		return nil, 0
	}
	return found, found.Amount
}

func validate(terms model.LoanTerms, injections []model.Injection) error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}
	if terms.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive", ErrInvalidInput)
	}
	for _, inj := range injections {
		if inj.Month < 1 {
			return fmt.Errorf("%w: injection month %d", ErrInvalidInput, inj.Month)
		}
		if inj.Amount < 0 {
			return fmt.Errorf("%w: injection amount %.2f in month %d", ErrInvalidInput, inj.Amount, inj.Month)
		}
		if !inj.Policy.Valid() {
			return fmt.Errorf("%w: injection policy %q in month %d", ErrInvalidInput, inj.Policy, inj.Month)
		}
	}
	return nil
}
