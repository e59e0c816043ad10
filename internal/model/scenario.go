package model

// ScenarioKind selects the rate regime of a scenario.
type ScenarioKind string

const (
	ScenarioFixed    ScenarioKind = "fixed"
	ScenarioVariable ScenarioKind = "variable"
	ScenarioMixed    ScenarioKind = "mixed"
)

// ModelKind names a stochastic index-path model.
type ModelKind string

const (
	ModelGaussian      ModelKind = "gaussian"
	ModelMeanReverting ModelKind = "mean-reverting"
	ModelUniformWalk   ModelKind = "uniform-walk"
	ModelConstant      ModelKind = "constant"
)

// ModelParams carries the parameters of the stochastic models. Each model
// reads only the fields it needs; annualized units throughout.
type ModelParams struct {
	Volatility      float64 // gaussian, mean-reverting
	Drift           float64 // gaussian
	MeanLevel       float64 // mean-reverting
	ReversionSpeed  float64 // mean-reverting
	MaxAnnualChange float64 // uniform-walk
}

// Scenario is one fully specified simulation: a loan, its rate regime and,
// for stochastic kinds, the index model and trial count.
type Scenario struct {
	Name      string
	Kind      ScenarioKind
	Principal float64
	TermYears int

	Rate float64 // fixed kind: the annual rate for the whole term

	Spread       float64 // variable/mixed: margin over the index
	InitialIndex float64 // variable/mixed: index value at month 1

	FixedRate  float64 // mixed: rate during the initial fixed phase
	FixedYears int     // mixed: length of the fixed phase

	Model       ModelKind
	ModelParams ModelParams
	Simulations int

	Injections []Injection
}

// TermMonths returns the nominal term in months.
func (s Scenario) TermMonths() int { return s.TermYears * 12 }
