package formula

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPayment_Concrete(t *testing.T) {
	// 200000 at 3.22% over 240 months.
	got, err := Payment(200000, 3.22, 240)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 1131.35, 0.01) {
		t.Errorf("expected payment ~1131.35, got %.4f", got)
	}
}

func TestPayment_ZeroRate(t *testing.T) {
	got, err := Payment(12000, 0, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("expected straight-line payment 100, got %.4f", got)
	}
}

func TestPayment_DegeneratePrincipal(t *testing.T) {
	got, err := Payment(0, 3.22, 240)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 for non-positive principal, got %.4f", got)
	}
}

func TestPayment_InvalidTerm(t *testing.T) {
	for _, term := range []int{0, -12} {
		if _, err := Payment(200000, 3.22, term); !errors.Is(err, ErrInvalidTerm) {
			t.Errorf("term %d: expected ErrInvalidTerm, got %v", term, err)
		}
	}
}

func TestMonthlyInterest(t *testing.T) {
	got := MonthlyInterest(200000, 3.22)
	if !almostEqual(got, 536.67, 0.01) {
		t.Errorf("expected ~536.67, got %.4f", got)
	}
	if MonthlyInterest(0, 3.22) != 0 {
		t.Error("expected 0 interest on zero principal")
	}
}

func TestImpliedTerm_PaymentTooLow(t *testing.T) {
	// 500 < 200000 * 3.22/1200 = 536.67: no finite term exists.
	if _, err := ImpliedTerm(200000, 3.22, 500); !errors.Is(err, ErrPaymentTooLow) {
		t.Errorf("expected ErrPaymentTooLow, got %v", err)
	}
	// Exactly the interest is still too low.
	if _, err := ImpliedTerm(200000, 3.22, 200000*3.22/1200); !errors.Is(err, ErrPaymentTooLow) {
		t.Errorf("expected ErrPaymentTooLow at the interest boundary, got %v", err)
	}
}

func TestImpliedTerm_RoundTrip(t *testing.T) {
	tests := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{200000, 3.22, 240},
		{150000, 1.85, 360},
		{80000, 4.5, 120},
		{50000, 0, 60},
	}
	for _, tt := range tests {
		payment, err := Payment(tt.principal, tt.rate, tt.term)
		if err != nil {
			t.Fatalf("payment(%v): %v", tt, err)
		}
		got, err := ImpliedTerm(tt.principal, tt.rate, payment)
		if err != nil {
			t.Fatalf("impliedTerm(%v): %v", tt, err)
		}
		if got < tt.term-1 || got > tt.term+1 {
			t.Errorf("round trip for %+v: expected ~%d months, got %d", tt, tt.term, got)
		}
	}
}

func TestImpliedTerm_FlooredAtOneMonth(t *testing.T) {
	// A payment far above the balance still implies one month.
	got, err := ImpliedTerm(100, 3.0, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("expected 1 month, got %d", got)
	}
}
