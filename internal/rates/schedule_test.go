package rates

import (
	"testing"

	"MortgageLab/internal/model"
)

func TestConstant(t *testing.T) {
	c := Constant{Rate: 3.22}
	for _, m := range []int{1, 12, 240} {
		if c.RateAt(m) != 3.22 {
			t.Errorf("month %d: expected 3.22, got %v", m, c.RateAt(m))
		}
		if c.RecomputeAt(m) {
			t.Errorf("month %d: constant schedule must never reprice", m)
		}
	}
	if c.Horizon() != 0 {
		t.Errorf("expected unbounded horizon, got %d", c.Horizon())
	}
}

func TestPath_SpreadAndBoundaries(t *testing.T) {
	index := make([]float64, 36)
	for i := range index {
		index[i] = 2.0
	}
	p := Path{Index: index, Spread: 1.0}

	if got := p.RateAt(1); got != 3.0 {
		t.Errorf("expected index+spread 3.0, got %v", got)
	}
	if p.Horizon() != 36 {
		t.Errorf("expected horizon 36, got %d", p.Horizon())
	}

	recompute := map[int]bool{1: false, 2: false, 12: false, 13: true, 14: false, 25: true}
	for m, want := range recompute {
		if got := p.RecomputeAt(m); got != want {
			t.Errorf("month %d: RecomputeAt = %v, want %v", m, got, want)
		}
	}
}

func TestMixed_PhasesAndBoundaries(t *testing.T) {
	index := make([]float64, 120)
	for i := range index {
		index[i] = 2.0
	}
	m := Mixed{FixedRate: 2.5, FixedMonths: 60, Index: index, Spread: 0.8}

	if got := m.RateAt(1); got != 2.5 {
		t.Errorf("month 1: expected fixed rate, got %v", got)
	}
	if got := m.RateAt(60); got != 2.5 {
		t.Errorf("month 60: still fixed phase, got %v", got)
	}
	if got := m.RateAt(61); got != 2.8 {
		t.Errorf("month 61: expected index+spread 2.8, got %v", got)
	}

	recompute := map[int]bool{
		1:  false,
		13: false, // annual boundary inside fixed phase does not reprice
		60: false,
		61: true, // fixed-to-variable transition
		62: false,
		72: false,
		73: true, // first annual boundary of the variable phase
	}
	for month, want := range recompute {
		if got := m.RecomputeAt(month); got != want {
			t.Errorf("month %d: RecomputeAt = %v, want %v", month, got, want)
		}
	}
}

func TestForScenario(t *testing.T) {
	path := []float64{2, 2, 2}

	sc := model.Scenario{Kind: model.ScenarioFixed, Rate: 3.0}
	if _, ok := ForScenario(sc, path).(Constant); !ok {
		t.Error("fixed scenario: expected Constant schedule")
	}

	sc = model.Scenario{Kind: model.ScenarioVariable, Spread: 1.0}
	if _, ok := ForScenario(sc, path).(Path); !ok {
		t.Error("variable scenario: expected Path schedule")
	}

	sc = model.Scenario{Kind: model.ScenarioMixed, FixedRate: 2.5, FixedYears: 5}
	mixed, ok := ForScenario(sc, path).(Mixed)
	if !ok {
		t.Fatal("mixed scenario: expected Mixed schedule")
	}
	if mixed.FixedMonths != 60 {
		t.Errorf("expected 60 fixed months, got %d", mixed.FixedMonths)
	}
}
