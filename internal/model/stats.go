package model

// Distribution summarizes a numeric sample: mean, population standard
// deviation and the interpolated 5th/95th percentiles. A sample of one
// (a deterministic scenario) has Std 0 and all quantiles equal to Mean.
type Distribution struct {
	Mean float64
	Std  float64
	P5   float64
	P95  float64
}

// MonthStats holds the ensemble distribution of every schedule column for
// one month. Samples is the number of runs that reached this month; early
// payoffs shrink it at later months, no padding is applied.
type MonthStats struct {
	Month     int
	Samples   int
	Payment   Distribution
	Interest  Distribution
	Principal Distribution
	Rate      Distribution
}

// EnsembleStatistics is the per-month aggregation of an ensemble, ordered
// by month starting at 1.
type EnsembleStatistics []MonthStats

// ScenarioResult is the reduced, comparable outcome of one scenario.
// For stochastic scenarios the distributions run over all trials; for a
// fixed scenario they collapse to a single sample.
type ScenarioResult struct {
	Name        string
	Kind        ScenarioKind
	Simulations int

	InitialPayment Distribution
	TotalInterest  Distribution
	TotalPaid      Distribution
	DurationMonths Distribution

	// InterestSaved is the mean interest advantage over a no-injection
	// baseline computed with identical terms and, for stochastic runs,
	// the same rate paths. Zero when the scenario has no injections.
	InterestSaved float64

	Stats EnsembleStatistics
	Runs  []SimulationRun
}
