package evo

import (
	"math"
	"testing"
)

func TestBestIndexIgnoresNaN(t *testing.T) {
	idx, ok := bestIndex([]float64{math.NaN(), 3, math.NaN(), 7, 2})
	if !ok {
		t.Fatalf("expected a best index")
	}
	if idx != 3 {
		t.Fatalf("expected index 3 (value 7), got %d", idx)
	}
}

func TestBestIndexAllNaNKeepsFirst(t *testing.T) {
	idx, ok := bestIndex([]float64{math.NaN(), math.NaN()})
	if !ok {
		t.Fatalf("expected a best index even when every value is NaN")
	}
	if idx != 0 {
		t.Fatalf("expected the first index to remain incumbent, got %d", idx)
	}
}

func TestBestIndexTiesKeepLowestIndex(t *testing.T) {
	idx, ok := bestIndex([]float64{5, 5, 5})
	if !ok || idx != 0 {
		t.Fatalf("expected a tie to resolve to the lowest index, got idx=%d ok=%v", idx, ok)
	}
}

func TestBestIndexEmpty(t *testing.T) {
	if _, ok := bestIndex(nil); ok {
		t.Fatalf("expected no best index for an empty fitness slice")
	}
}

func TestNewRunBuildsConfiguredPopulation(t *testing.T) {
	cfg := Config{Seed: 42, Population: 8, Generations: 10, MutationRate: 0.1, Task: "t"}
	rn := newRun(cfg)
	if len(rn.population) != cfg.Population {
		t.Fatalf("expected population size %d, got %d", cfg.Population, len(rn.population))
	}
	if rn.generation != 0 {
		t.Fatalf("expected generation 0 on a fresh run, got %d", rn.generation)
	}
}

func TestApplyFitnessRecordsHistory(t *testing.T) {
	cfg := Config{Seed: 1, Population: 3, Generations: 1, MutationRate: 0, Task: "t"}
	rn := newRun(cfg)
	rn.applyFitness([]float64{1, 2, 0})
	if rn.bestFitness != 2 {
		t.Fatalf("expected best_fitness 2, got %v", rn.bestFitness)
	}
	if len(rn.history) != 1 || rn.history[0].Generation != 0 || rn.history[0].BestFitness != 2 {
		t.Fatalf("unexpected history after first applyFitness: %+v", rn.history)
	}
}

func TestCommitIncrementsGenerationAndHistory(t *testing.T) {
	cfg := Config{Seed: 1, Population: 3, Generations: 5, MutationRate: 0, Task: "t"}
	rn := newRun(cfg)
	rn.applyFitness([]float64{1, 2, 0})

	next := rn.nextPopulation()
	rn.commit(next, []float64{5, 1, 2})

	if rn.generation != 1 {
		t.Fatalf("expected generation 1 after one commit, got %d", rn.generation)
	}
	if len(rn.history) != 2 {
		t.Fatalf("expected 2 history points after one commit, got %d", len(rn.history))
	}
	if rn.history[1].Generation != 1 || rn.history[1].BestFitness != 5 {
		t.Fatalf("unexpected second history point: %+v", rn.history[1])
	}
}

func TestDeriveRunIDIsStableForIdenticalSeeds(t *testing.T) {
	cfg := Config{Seed: 42, Population: 8, Generations: 3, MutationRate: 0.1, Task: "t"}

	rnA := newRun(cfg)
	rnA.applyFitness(make([]float64, cfg.Population))
	idA := deriveRunID(rnA)

	rnB := newRun(cfg)
	rnB.applyFitness(make([]float64, cfg.Population))
	idB := deriveRunID(rnB)

	if idA != idB {
		t.Fatalf("expected identical seeds to derive the same run id, got %q and %q", idA, idB)
	}
	if len(idA) != 16 {
		t.Fatalf("expected a 16-hex-digit run id, got %q", idA)
	}
}
