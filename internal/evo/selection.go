package evo

import (
	"math"

	"evoserve/internal/rng"
)

// tournamentSize is the fixed k for tournament selection.
const tournamentSize = 3

// tournamentSelect draws tournamentSize indices uniformly with
// replacement from [0, len(fitness)) and returns the index with the
// largest fitness, ties broken by earliest draw. A missing or NaN
// fitness at a drawn index counts as 0.0.
func tournamentSelect(r *rng.Source, fitness []float64) int {
	best := -1
	bestFit := 0.0
	for i := 0; i < tournamentSize; i++ {
		idx := r.IntN(len(fitness))
		fit := 0.0
		if idx < len(fitness) && !math.IsNaN(fitness[idx]) {
			fit = fitness[idx]
		}
		if best == -1 || fit > bestFit {
			best = idx
			bestFit = fit
		}
	}
	return best
}
