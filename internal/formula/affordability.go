package formula

import (
	"errors"
	"fmt"
	"math"
)

// MaxPurchasePrice returns the highest property price affordable given a
// net monthly salary, the tolerated payment-to-salary ratio, the expected
// down payment (percent of the price) and the financing terms. It inverts
// the annuity formula: the affordable payment fixes the financeable
// principal, which is then grossed up by the down payment.
func MaxPurchasePrice(netMonthlySalary, paymentToSalary, downPaymentPct, annualRatePct float64, termMonths int) (float64, error) {
	if netMonthlySalary <= 0 {
		return 0, errors.New("net monthly salary must be positive")
	}
	if paymentToSalary <= 0 || paymentToSalary > 1 {
		return 0, errors.New("payment-to-salary ratio must be in (0, 1]")
	}
	if downPaymentPct < 0 || downPaymentPct >= 100 {
		return 0, errors.New("down payment percent must be in [0, 100)")
	}
	if termMonths <= 0 {
		return 0, fmt.Errorf("term %d months: %w", termMonths, ErrInvalidTerm)
	}

	payment := netMonthlySalary * paymentToSalary

	var principal float64
	i := monthlyRate(annualRatePct)
	if i == 0 {
		principal = payment * float64(termMonths)
	} else {
		// Inverse of Payment: principal = payment / annuity factor.
		factor := i / (1 - math.Pow(1+i, float64(-termMonths)))
		principal = payment / factor
	}

	return principal / (1 - downPaymentPct/100), nil
}
