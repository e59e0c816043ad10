package formula

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidTerm is returned for a non-positive term.
	ErrInvalidTerm = errors.New("term must be positive")
	// ErrPaymentTooLow is returned when a payment does not cover the
	// interest due, so no finite term exists.
	ErrPaymentTooLow = errors.New("payment does not cover interest")
)

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 1200
}

// Payment returns the fixed monthly annuity payment that amortizes
// principal at the given annual rate over termMonths. A non-positive
// principal yields 0 (degenerate, not an error). A zero rate degenerates
// to straight-line repayment.
func Payment(principal, annualRatePct float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("term %d months: %w", termMonths, ErrInvalidTerm)
	}
	if principal <= 0 {
		return 0, nil
	}
	i := monthlyRate(annualRatePct)
	if i == 0 {
		return principal / float64(termMonths), nil
	}
	return principal * i / (1 - math.Pow(1+i, float64(-termMonths))), nil
}

// MonthlyInterest returns the interest accrued in one month on the
// outstanding principal.
func MonthlyInterest(pendingPrincipal, annualRatePct float64) float64 {
	return pendingPrincipal * monthlyRate(annualRatePct)
}

// ImpliedTerm returns the number of months needed to amortize principal at
// the given annual rate with a fixed payment, rounded up and floored at one
// month. It fails with ErrPaymentTooLow when the payment does not exceed
// the first month's interest.
func ImpliedTerm(principal, annualRatePct, payment float64) (int, error) {
	if principal <= 0 {
		return 0, nil
	}
	i := monthlyRate(annualRatePct)
	if payment <= principal*i {
		return 0, fmt.Errorf("payment %.2f vs interest %.2f: %w", payment, principal*i, ErrPaymentTooLow)
	}
	if i == 0 {
		return maxInt(int(math.Ceil(principal/payment)), 1), nil
	}
	n := -math.Log(1-principal*i/payment) / math.Log(1+i)
	return maxInt(int(math.Ceil(n)), 1), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
