package montecarlo

import (
	"math"
	"sort"

	"MortgageLab/internal/model"
)

// Aggregate groups all runs' records by month and summarizes every
// schedule column. Month m is aggregated over only the runs that reached
// it: early payoffs shrink the sample at later months, recorded in
// MonthStats.Samples, and no padding or forward-filling is applied.
func Aggregate(runs []model.SimulationRun) model.EnsembleStatistics {
	longest := 0
	for _, r := range runs {
		if d := r.Schedule.Duration(); d > longest {
			longest = d
		}
	}

	stats := make(model.EnsembleStatistics, 0, longest)
	payments := make([]float64, 0, len(runs))
	interests := make([]float64, 0, len(runs))
	principals := make([]float64, 0, len(runs))
	rateVals := make([]float64, 0, len(runs))

	for m := 1; m <= longest; m++ {
		payments = payments[:0]
		interests = interests[:0]
		principals = principals[:0]
		rateVals = rateVals[:0]

		for _, r := range runs {
			if m > r.Schedule.Duration() {
				continue
			}
			rec := r.Schedule[m-1]
			payments = append(payments, rec.Payment)
			interests = append(interests, rec.Interest)
			principals = append(principals, rec.Principal)
			rateVals = append(rateVals, rec.Rate)
		}

		stats = append(stats, model.MonthStats{
			Month:     m,
			Samples:   len(payments),
			Payment:   Describe(payments),
			Interest:  Describe(interests),
			Principal: Describe(principals),
			Rate:      Describe(rateVals),
		})
	}

	return stats
}

// Describe reduces a sample to mean, population standard deviation and the
// 5th/95th percentiles.
func Describe(values []float64) model.Distribution {
	if len(values) == 0 {
		return model.Distribution{}
	}
	m := mean(values)
	return model.Distribution{
		Mean: m,
		Std:  stdDev(values, m),
		P5:   Percentile(values, 5),
		P95:  Percentile(values, 95),
	}
}

// Percentile returns the p-th percentile with linear interpolation between
// the closest ranks, matching the usual statistical convention.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation around the given mean.
func stdDev(values []float64, mean float64) float64 {
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}
