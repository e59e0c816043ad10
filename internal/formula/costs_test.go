package formula

import "testing"

func TestEstimatePurchaseCosts_Resale(t *testing.T) {
	c := EstimatePurchaseCosts(CostInputs{Price: 100000})

	if !almostEqual(c.Notary, 300, 0.01) {
		t.Errorf("notary: expected 300, got %.2f", c.Notary)
	}
	if !almostEqual(c.Registry, 200, 0.01) {
		t.Errorf("registry: expected 200, got %.2f", c.Registry)
	}
	if !almostEqual(c.TransferTax, 8000, 0.01) {
		t.Errorf("transfer tax: expected default 8%%, got %.2f", c.TransferTax)
	}
	if c.VAT != 0 || c.StampDuty != 0 {
		t.Error("resale must not carry VAT or stamp duty")
	}
	if c.Agency != 0 {
		t.Error("agency not requested")
	}
	if !almostEqual(c.Total(), 300+200+8000+400+500, 0.01) {
		t.Errorf("total: got %.2f", c.Total())
	}
}

func TestEstimatePurchaseCosts_NewBuild(t *testing.T) {
	c := EstimatePurchaseCosts(CostInputs{Price: 100000, NewBuild: true})

	if !almostEqual(c.VAT, 10000, 0.01) {
		t.Errorf("VAT: expected 10000, got %.2f", c.VAT)
	}
	if !almostEqual(c.StampDuty, 1200, 0.01) {
		t.Errorf("stamp duty: expected 1200, got %.2f", c.StampDuty)
	}
	if c.TransferTax != 0 {
		t.Error("new build must not carry transfer tax")
	}
}

func TestEstimatePurchaseCosts_AgencyCap(t *testing.T) {
	c := EstimatePurchaseCosts(CostInputs{Price: 1000000, Agency: true})
	if c.Agency != 600 {
		t.Errorf("agency fee must cap at 600, got %.2f", c.Agency)
	}

	c = EstimatePurchaseCosts(CostInputs{Price: 100000, Agency: true})
	if !almostEqual(c.Agency, 100, 0.01) {
		t.Errorf("agency fee below cap: expected 100, got %.2f", c.Agency)
	}
}

func TestEstimatePurchaseCosts_RegionalTax(t *testing.T) {
	c := EstimatePurchaseCosts(CostInputs{Price: 100000, TransferTaxPct: 6})
	if !almostEqual(c.TransferTax, 6000, 0.01) {
		t.Errorf("transfer tax: expected 6000, got %.2f", c.TransferTax)
	}
}

func TestMaxPurchasePrice(t *testing.T) {
	// Zero rate degenerates to payment * term, grossed up by down payment.
	got, err := MaxPurchasePrice(1000, 0.3, 20, 0, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 300.0 * 120 / 0.8
	if !almostEqual(got, want, 0.01) {
		t.Errorf("expected %.2f, got %.2f", want, got)
	}
}

func TestMaxPurchasePrice_ConsistentWithPayment(t *testing.T) {
	// Financing the implied principal at the same terms must give back
	// the affordable payment.
	salary, ratio := 2800.0, 0.35
	price, err := MaxPurchasePrice(salary, ratio, 20, 3.0, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	principal := price * 0.8
	payment, err := Payment(principal, 3.0, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(payment, salary*ratio, 0.01) {
		t.Errorf("expected payment %.2f, got %.2f", salary*ratio, payment)
	}
}

func TestMaxPurchasePrice_InvalidInputs(t *testing.T) {
	tests := []struct {
		name                    string
		salary, ratio, down, rt float64
		term                    int
	}{
		{"zero salary", 0, 0.3, 20, 3, 240},
		{"ratio above 1", 2000, 1.5, 20, 3, 240},
		{"full down payment", 2000, 0.3, 100, 3, 240},
		{"zero term", 2000, 0.3, 20, 3, 0},
	}
	for _, tt := range tests {
		if _, err := MaxPurchasePrice(tt.salary, tt.ratio, tt.down, tt.rt, tt.term); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
