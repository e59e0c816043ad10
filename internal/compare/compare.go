// Package compare reduces scenarios to comparable one-row summaries:
// initial payment, totals, duration and the interest saved by injections
// relative to a no-injection baseline over the same terms and rate paths.
package compare

import (
	"fmt"

	"MortgageLab/internal/engine"
	"MortgageLab/internal/model"
	"MortgageLab/internal/montecarlo"
	"MortgageLab/internal/rates"
)

// scenarioSeedStride keeps the scenario-level seeds of one batch apart so
// scenarios never share trial streams.
const scenarioSeedStride = 7_919

// Batch runs every scenario and returns their results in input order.
// Each scenario derives its own seed from the batch seed, so a non-zero
// batch seed reproduces the whole comparison.
func Batch(scenarios []model.Scenario, seed int64) ([]*model.ScenarioResult, error) {
	results := make([]*model.ScenarioResult, 0, len(scenarios))
	for i, sc := range scenarios {
		scenarioSeed := seed
		if seed != 0 {
			scenarioSeed = seed + int64(i)*scenarioSeedStride
		}
		res, err := Scenario(sc, scenarioSeed)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Scenario runs one scenario to completion: a single deterministic run for
// the fixed kind, a Monte Carlo ensemble for variable and mixed kinds.
func Scenario(sc model.Scenario, seed int64) (*model.ScenarioResult, error) {
	var (
		runs []model.SimulationRun
		err  error
	)
	switch sc.Kind {
	case model.ScenarioFixed:
		runs, err = fixedRun(sc)
	case model.ScenarioVariable, model.ScenarioMixed:
		runs, err = montecarlo.RunEnsemble(sc, seed)
	default:
		return nil, fmt.Errorf("%w: scenario kind %q", engine.ErrInvalidInput, sc.Kind)
	}
	if err != nil {
		return nil, err
	}

	saved := 0.0
	if len(sc.Injections) > 0 {
		saved, err = interestSaved(sc, runs)
		if err != nil {
			return nil, err
		}
	}

	return summarize(sc, runs, saved), nil
}

func fixedRun(sc model.Scenario) ([]model.SimulationRun, error) {
	terms := model.LoanTerms{Principal: sc.Principal, TermMonths: sc.TermMonths()}
	schedule, err := engine.Run(terms, rates.Constant{Rate: sc.Rate}, sc.Injections)
	if err != nil {
		return nil, err
	}
	return []model.SimulationRun{{Index: 0, Schedule: schedule}}, nil
}

// interestSaved replays every run without its injections, over the same
// rate path, and averages the interest difference.
func interestSaved(sc model.Scenario, runs []model.SimulationRun) (float64, error) {
	terms := model.LoanTerms{Principal: sc.Principal, TermMonths: sc.TermMonths()}
	total := 0.0
	for _, run := range runs {
		baseline, err := engine.Run(terms, rates.ForScenario(sc, run.Path), nil)
		if err != nil {
			return 0, fmt.Errorf("baseline for trial %d: %w", run.Index, err)
		}
		total += baseline.TotalInterest() - run.Schedule.TotalInterest()
	}
	return total / float64(len(runs)), nil
}

// summarize computes the per-run totals and reduces them to distributions.
// Totals are summed from each run's own schedule, never re-derived from
// the per-month ensemble statistics.
func summarize(sc model.Scenario, runs []model.SimulationRun, saved float64) *model.ScenarioResult {
	initial := make([]float64, len(runs))
	interest := make([]float64, len(runs))
	paid := make([]float64, len(runs))
	duration := make([]float64, len(runs))
	for i, run := range runs {
		initial[i] = run.Schedule.InitialPayment()
		interest[i] = run.Schedule.TotalInterest()
		paid[i] = run.Schedule.TotalPaid()
		duration[i] = float64(run.Schedule.Duration())
	}

	return &model.ScenarioResult{
		Name:           sc.Name,
		Kind:           sc.Kind,
		Simulations:    len(runs),
		InitialPayment: montecarlo.Describe(initial),
		TotalInterest:  montecarlo.Describe(interest),
		TotalPaid:      montecarlo.Describe(paid),
		DurationMonths: montecarlo.Describe(duration),
		InterestSaved:  saved,
		Stats:          montecarlo.Aggregate(runs),
		Runs:           runs,
	}
}
