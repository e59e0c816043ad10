package montecarlo

import (
	"errors"
	"testing"

	"MortgageLab/internal/formula"
	"MortgageLab/internal/model"
)

func variableScenario(kind model.ModelKind, sims int) model.Scenario {
	return model.Scenario{
		Name:         "test",
		Kind:         model.ScenarioVariable,
		Principal:    200000,
		TermYears:    20,
		Spread:       1.0,
		InitialIndex: 2.2,
		Model:        kind,
		Simulations:  sims,
	}
}

func TestRunEnsemble_ConstantModelIsDegenerate(t *testing.T) {
	sc := variableScenario(model.ModelConstant, 50)
	runs, err := RunEnsemble(sc, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 50 {
		t.Fatalf("expected 50 runs, got %d", len(runs))
	}

	ref := runs[0].Schedule
	for _, r := range runs[1:] {
		if len(r.Schedule) != len(ref) {
			t.Fatalf("run %d: schedule length %d, want %d", r.Index, len(r.Schedule), len(ref))
		}
		for m := range ref {
			if r.Schedule[m] != ref[m] {
				t.Fatalf("run %d diverges at month %d under a constant model", r.Index, m+1)
			}
		}
	}

	// Degenerate ensemble: zero dispersion at every month.
	for _, ms := range Aggregate(runs) {
		if ms.Samples != 50 {
			t.Errorf("month %d: expected 50 samples, got %d", ms.Month, ms.Samples)
		}
		if ms.Payment.Std > 1e-9 || ms.Rate.Std > 1e-9 {
			t.Errorf("month %d: expected zero std-dev, got payment %g rate %g",
				ms.Month, ms.Payment.Std, ms.Rate.Std)
		}
	}
}

func TestRunEnsemble_SeedReproducibility(t *testing.T) {
	sc := variableScenario(model.ModelGaussian, 8)
	sc.ModelParams = model.ModelParams{Volatility: 0.5}

	a, err := RunEnsemble(sc, 7)
	if err != nil {
		t.Fatalf("first ensemble: %v", err)
	}
	b, err := RunEnsemble(sc, 7)
	if err != nil {
		t.Fatalf("second ensemble: %v", err)
	}

	for i := range a {
		for m := range a[i].Path {
			if a[i].Path[m] != b[i].Path[m] {
				t.Fatalf("trial %d: paths differ at month %d for the same seed", i, m+1)
			}
		}
	}

	c, err := RunEnsemble(sc, 8)
	if err != nil {
		t.Fatalf("third ensemble: %v", err)
	}
	same := true
	for m := range a[0].Path {
		if a[0].Path[m] != c[0].Path[m] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced the same path")
	}
}

func TestRunEnsemble_TrialsAreIndependent(t *testing.T) {
	sc := variableScenario(model.ModelGaussian, 4)
	sc.ModelParams = model.ModelParams{Volatility: 0.5}

	runs, err := RunEnsemble(sc, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Index != i {
			t.Fatalf("run %d carries index %d", i, runs[i].Index)
		}
		if runs[i].Path[11] == runs[0].Path[11] {
			t.Errorf("trials 0 and %d drew the same rate at month 12", i)
		}
	}
}

func TestRunEnsemble_FailsFastOnTrialError(t *testing.T) {
	// A strong deterministic upward drift with no noise drives every path
	// far above what the repriced payment can absorb mid-year.
	sc := variableScenario(model.ModelGaussian, 10)
	sc.ModelParams = model.ModelParams{Drift: 600, Volatility: 0}

	_, err := RunEnsemble(sc, 3)
	if err == nil {
		t.Fatal("expected the ensemble to fail")
	}
	var te *TrialError
	if !errors.As(err, &te) {
		t.Fatalf("expected a TrialError, got %T: %v", err, err)
	}
	if !errors.Is(err, formula.ErrPaymentTooLow) {
		t.Errorf("expected ErrPaymentTooLow underneath, got %v", err)
	}
}

func TestRunEnsemble_InvalidScenario(t *testing.T) {
	sc := variableScenario(model.ModelConstant, 0)
	if _, err := RunEnsemble(sc, 1); err == nil {
		t.Error("expected an error for zero simulations")
	}

	sc = variableScenario(model.ModelConstant, 10)
	sc.TermYears = 0
	if _, err := RunEnsemble(sc, 1); err == nil {
		t.Error("expected an error for a zero term")
	}
}
