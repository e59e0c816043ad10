// Package montecarlo drives ensembles of independent amortization runs
// over stochastic rate paths and aggregates their statistics.
package montecarlo

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"MortgageLab/internal/engine"
	"MortgageLab/internal/model"
	"MortgageLab/internal/rates"
)

// TrialError wraps the fatal error of a single trial with its index. The
// whole ensemble fails fast; no partial ensemble is returned.
type TrialError struct {
	Trial int
	Err   error
}

func (e *TrialError) Error() string { return fmt.Sprintf("trial %d: %v", e.Trial, e.Err) }

func (e *TrialError) Unwrap() error { return e.Err }

// seedStride separates per-trial seeds so derived streams do not overlap.
const seedStride = 1_000_000_007

// RunEnsemble runs sc.Simulations independent trials: each generates a
// fresh index path, wraps it in the scenario's rate schedule and amortizes
// the loan over it. Trials run in parallel on bounded workers and share no
// state; runs come back ordered by trial index.
//
// A seed of 0 draws unpredictable paths; any other seed makes the whole
// ensemble reproducible.
func RunEnsemble(sc model.Scenario, seed int64) ([]model.SimulationRun, error) {
	if sc.Simulations <= 0 {
		return nil, fmt.Errorf("%w: simulation count %d", engine.ErrInvalidInput, sc.Simulations)
	}
	if sc.TermYears <= 0 {
		return nil, fmt.Errorf("%w: term %d years", engine.ErrInvalidInput, sc.TermYears)
	}

	months := sc.TermMonths()
	terms := model.LoanTerms{Principal: sc.Principal, TermMonths: months}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		runs     = make([]model.SimulationRun, sc.Simulations)
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, workerCount(sc.Simulations))

	for i := 0; i < sc.Simulations; i++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			gen, err := rates.NewGenerator(sc.Model, sc.InitialIndex, sc.ModelParams, seed+int64(trial)*seedStride)
			if err != nil {
				fail(&mu, &firstErr, trial, err)
				return
			}
			path := gen.Generate(months)

			schedule, err := engine.Run(terms, rates.ForScenario(sc, path), sc.Injections)
			if err != nil {
				fail(&mu, &firstErr, trial, err)
				return
			}
			runs[trial] = model.SimulationRun{Index: trial, Path: path, Schedule: schedule}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return runs, nil
}

func fail(mu *sync.Mutex, firstErr *error, trial int, err error) {
	mu.Lock()
	defer mu.Unlock()
	if *firstErr == nil {
		*firstErr = &TrialError{Trial: trial, Err: err}
	}
}

func workerCount(trials int) int {
	n := runtime.GOMAXPROCS(0)
	if trials < n {
		return trials
	}
	return n
}
