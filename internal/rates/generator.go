package rates

import (
	"fmt"
	"math"
	"math/rand"

	"MortgageLab/internal/model"
)

// RateFloor is the lowest annual index value any generated path may carry.
const RateFloor = -1.0

// Generator produces realizations of a monthly index path. Each generator
// owns its random source, so distinct generators draw independent paths and
// equal seeds reproduce equal paths.
type Generator interface {
	Generate(months int) []float64
}

// NewGenerator builds the generator a scenario's model kind names. The seed
// fully determines the output; callers wanting independent trials must use
// distinct seeds.
func NewGenerator(kind model.ModelKind, initial float64, p model.ModelParams, seed int64) (Generator, error) {
	rng := rand.New(rand.NewSource(seed))
	switch kind {
	case model.ModelGaussian:
		return &Gaussian{Initial: initial, Drift: p.Drift, Volatility: p.Volatility, rng: rng}, nil
	case model.ModelMeanReverting:
		return &MeanReverting{Initial: initial, MeanLevel: p.MeanLevel, Speed: p.ReversionSpeed, Volatility: p.Volatility, rng: rng}, nil
	case model.ModelUniformWalk:
		return &UniformWalk{Initial: initial, MaxAnnualChange: p.MaxAnnualChange, rng: rng}, nil
	case model.ModelConstant:
		return ConstantPath{Initial: initial}, nil
	default:
		return nil, fmt.Errorf("unknown path model %q", kind)
	}
}

// Gaussian is a cumulative random walk with normally distributed monthly
// increments: mean Drift/12, std Volatility/sqrt(12).
type Gaussian struct {
	Initial    float64
	Drift      float64 // annual drift, percentage points
	Volatility float64 // annual volatility, percentage points
	rng        *rand.Rand
}

func (g *Gaussian) Generate(months int) []float64 {
	path := make([]float64, months)
	current := g.Initial
	mean := g.Drift / 12
	std := g.Volatility / math.Sqrt(12)
	for m := range path {
		current = floor(current + mean + std*g.rng.NormFloat64())
		path[m] = current
	}
	return path
}

// MeanReverting is an annualized Ornstein-Uhlenbeck process discretized
// with Euler-Maruyama at dt = 1/12.
type MeanReverting struct {
	Initial    float64
	MeanLevel  float64
	Speed      float64
	Volatility float64
	rng        *rand.Rand
}

func (g *MeanReverting) Generate(months int) []float64 {
	const dt = 1.0 / 12
	path := make([]float64, months)
	current := g.Initial
	for m := range path {
		drift := g.Speed * (g.MeanLevel - current) * dt
		shock := g.Volatility * math.Sqrt(dt) * g.rng.NormFloat64()
		current = floor(current + drift + shock)
		path[m] = current
	}
	return path
}

// UniformWalk adds a monthly increment drawn uniformly from
// [-MaxAnnualChange/12, +MaxAnnualChange/12].
type UniformWalk struct {
	Initial         float64
	MaxAnnualChange float64
	rng             *rand.Rand
}

func (g *UniformWalk) Generate(months int) []float64 {
	path := make([]float64, months)
	current := g.Initial
	bound := g.MaxAnnualChange / 12
	for m := range path {
		change := (2*g.rng.Float64() - 1) * bound
		current = floor(current + change)
		path[m] = current
	}
	return path
}

// ConstantPath repeats the initial value every month, the degenerate
// baseline model.
type ConstantPath struct {
	Initial float64
}

func (g ConstantPath) Generate(months int) []float64 {
	path := make([]float64, months)
	for m := range path {
		path[m] = g.Initial
	}
	return path
}

func floor(v float64) float64 {
	if v < RateFloor {
		return RateFloor
	}
	return v
}
