package rates

import "MortgageLab/internal/model"

// Schedule supplies the annual rate in force for any month of a loan and
// tells the amortization engine when the payment must be recomputed.
type Schedule interface {
	// RateAt returns the annual rate (percent) for the 1-based month.
	RateAt(month int) float64
	// RecomputeAt reports whether the payment reprices at this month:
	// annual boundaries for variable schedules, the first variable month
	// for mixed ones. Never true for month 1.
	RecomputeAt(month int) bool
	// Horizon is the number of months the schedule can serve, 0 when
	// unbounded. The engine never asks beyond it.
	Horizon() int
}

// Constant returns the same rate for every month and never reprices.
type Constant struct {
	Rate float64
}

func (c Constant) RateAt(int) float64   { return c.Rate }
func (c Constant) RecomputeAt(int) bool { return false }
func (c Constant) Horizon() int         { return 0 }

// Path applies a precomputed monthly index path plus a constant spread,
// repricing at every annual boundary (months 13, 25, ...).
type Path struct {
	Index  []float64
	Spread float64
}

func (p Path) RateAt(month int) float64 { return p.Index[month-1] + p.Spread }

func (p Path) RecomputeAt(month int) bool { return month > 1 && month%12 == 1 }

func (p Path) Horizon() int { return len(p.Index) }

// Mixed holds a fixed rate for the first FixedMonths, then follows the
// index plus spread. The payment reprices once at the fixed-to-variable
// transition and annually thereafter.
type Mixed struct {
	FixedRate   float64
	FixedMonths int
	Index       []float64
	Spread      float64
}

func (m Mixed) RateAt(month int) float64 {
	if month <= m.FixedMonths {
		return m.FixedRate
	}
	return m.Index[month-1] + m.Spread
}

func (m Mixed) RecomputeAt(month int) bool {
	if month <= m.FixedMonths {
		return false
	}
	return (month-m.FixedMonths)%12 == 1
}

func (m Mixed) Horizon() int { return len(m.Index) }

// ForScenario builds the schedule a scenario prescribes over the given
// index path. Fixed scenarios ignore the path.
func ForScenario(sc model.Scenario, path []float64) Schedule {
	switch sc.Kind {
	case model.ScenarioMixed:
		return Mixed{
			FixedRate:   sc.FixedRate,
			FixedMonths: sc.FixedYears * 12,
			Index:       path,
			Spread:      sc.Spread,
		}
	case model.ScenarioVariable:
		return Path{Index: path, Spread: sc.Spread}
	default:
		return Constant{Rate: sc.Rate}
	}
}
