package adaptive

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// BetaParams are the parameters of one difficulty's Beta posterior.
// Alpha counts successes + 1, Beta counts failures + 1.
type BetaParams struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// ThompsonSamplingAgent keeps a Beta posterior per difficulty level and picks
// by sampling, balancing exploration and exploitation.
type ThompsonSamplingAgent struct {
	params map[DifficultyLevel]BetaParams
	src    rand.Source
}

// NewThompsonSamplingAgent starts every level at the uniform Beta(1,1) prior.
// src may be nil for non-deterministic sampling.
func NewThompsonSamplingAgent(src rand.Source) *ThompsonSamplingAgent {
	if src == nil {
		src = rand.NewSource(rand.Uint64())
	}
	params := make(map[DifficultyLevel]BetaParams, len(Levels()))
	for _, d := range Levels() {
		params[d] = BetaParams{Alpha: 1, Beta: 1}
	}
	return &ThompsonSamplingAgent{params: params, src: src}
}

// Choose samples each available level's Beta posterior and returns the level
// with the largest sample.
func (a *ThompsonSamplingAgent) Choose(available []DifficultyLevel) DifficultyLevel {
	if len(available) == 0 {
		available = Levels()
	}

	best := available[0]
	bestSample := -1.0
	for _, level := range available {
		p, ok := a.params[level]
		if !ok {
			p = BetaParams{Alpha: 1, Beta: 1}
		}
		sample := distuv.Beta{Alpha: p.Alpha, Beta: p.Beta, Src: a.src}.Rand()
		if sample > bestSample {
			bestSample = sample
			best = level
		}
	}
	return best
}

// Update shifts the posterior for level: positive reward counts as a success,
// anything else as a failure.
func (a *ThompsonSamplingAgent) Update(level DifficultyLevel, reward float64) {
	p, ok := a.params[level]
	if !ok {
		p = BetaParams{Alpha: 1, Beta: 1}
	}
	if reward > 0 {
		p.Alpha++
	} else {
		p.Beta++
	}
	a.params[level] = p
}

// Params returns a copy of the current Beta posteriors.
func (a *ThompsonSamplingAgent) Params() map[DifficultyLevel]BetaParams {
	out := make(map[DifficultyLevel]BetaParams, len(a.params))
	for level, p := range a.params {
		out[level] = p
	}
	return out
}
