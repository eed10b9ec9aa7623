package evo

import (
	"fmt"
	"math"

	"evoserve/internal/genome"
	"evoserve/internal/rng"
)

// HistoryPoint is one (generation, best_fitness) sample. History is
// append-only and strictly non-decreasing in generation.
type HistoryPoint struct {
	Generation  int
	BestFitness float64
}

// run is one run's full internal state. Every field is owned exclusively
// by the registry that holds it; callers never see a *run directly, only
// the Snapshot/History views the registry clones out under lock.
type run struct {
	cfg Config

	generation  int
	population  []genome.Genome
	fitness     []float64
	bestFitness float64
	bestGenome  genome.Genome
	history     []HistoryPoint

	rng *rng.Source
}

// newRun builds a fresh run: a seeded RNG and cfg.Population random
// genomes drawn in order from it. No fitness exists yet; the caller
// scores the initial population and calls applyFitness before the run
// is otherwise observable.
func newRun(cfg Config) *run {
	r := rng.New(cfg.Seed)
	population := make([]genome.Genome, cfg.Population)
	for i := range population {
		population[i] = genome.Random(r)
	}
	return &run{cfg: cfg, population: population, rng: r}
}

// applyFitness records a scoring result against the run's current
// population: it sets fitness, recomputes best_fitness/best_genome (max
// over fitness, NaN never wins, ties broken by lowest index), and
// appends a history point at the run's current generation.
func (rn *run) applyFitness(fitness []float64) {
	rn.fitness = fitness
	if idx, ok := bestIndex(fitness); ok {
		rn.bestFitness = fitness[idx]
		rn.bestGenome = rn.population[idx].Clone()
	}
	rn.history = append(rn.history, HistoryPoint{Generation: rn.generation, BestFitness: rn.bestFitness})
}

// bestIndex returns the index of the maximum value in fitness, treating
// NaN as strictly worse than any other value so it never wins; ties are
// broken by the lowest index since only a strictly greater candidate
// replaces the incumbent.
func bestIndex(fitness []float64) (int, bool) {
	if len(fitness) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(fitness); i++ {
		if isBetter(fitness[i], fitness[best]) {
			best = i
		}
	}
	return best, true
}

func isBetter(candidate, incumbent float64) bool {
	if math.IsNaN(candidate) {
		return false
	}
	if math.IsNaN(incumbent) {
		return true
	}
	return candidate > incumbent
}

// nextPopulation builds the next generation under the run's exclusive
// lock: an elitist clone of best_genome, then tournament-selected,
// possibly-mutated clones of the current population until the new
// population reaches the configured size. The RNG advances during
// selection and mutation; this is part of the determinism contract.
func (rn *run) nextPopulation() []genome.Genome {
	n := len(rn.population)
	next := make([]genome.Genome, 0, n)
	next = append(next, rn.bestGenome.Clone())

	for len(next) < n {
		parentIdx := tournamentSelect(rn.rng, rn.fitness)
		child := rn.population[parentIdx].Clone()
		if rn.rng.Float64() < rn.cfg.MutationRate {
			genome.Mutate(&child, rn.rng)
		}
		next = append(next, child)
	}
	return next
}

// commit replaces the population with next, bumps the generation, and
// applies the newly scored fitness. It does not validate sizes; callers
// (orchestration) are responsible for the population-size invariant
// check before calling commit.
func (rn *run) commit(next []genome.Genome, fitness []float64) {
	rn.population = next
	rn.generation++
	rn.applyFitness(fitness)
}

// Snapshot is the external, cloned view of a run's current state.
type Snapshot struct {
	RunID        string
	Generation   int
	BestFitness  float64
	BestGenome   genome.Genome
	Seed         int64
	Population   int
	Generations  int
	MutationRate float64
	Task         string
}

func (rn *run) snapshot(runID string) Snapshot {
	return Snapshot{
		RunID:        runID,
		Generation:   rn.generation,
		BestFitness:  rn.bestFitness,
		BestGenome:   rn.bestGenome.Clone(),
		Seed:         rn.cfg.Seed,
		Population:   rn.cfg.Population,
		Generations:  rn.cfg.Generations,
		MutationRate: rn.cfg.MutationRate,
		Task:         rn.cfg.Task,
	}
}

// History is the external, cloned view of a run's history.
type History struct {
	RunID  string
	Task   string
	Points []HistoryPoint
}

func (rn *run) historySnapshot(runID string) History {
	points := make([]HistoryPoint, len(rn.history))
	copy(points, rn.history)
	return History{RunID: runID, Task: rn.cfg.Task, Points: points}
}

// deriveRunID draws a 64-bit value from the run's own RNG and formats it
// as 16 lowercase hex digits. Called exactly once, immediately after the
// initial scoring, so the id itself is part of the run's deterministic
// RNG-consumption sequence.
func deriveRunID(rn *run) string {
	return fmt.Sprintf("%016x", rn.rng.Uint64())
}
