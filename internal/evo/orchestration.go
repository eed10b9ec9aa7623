package evo

import (
	"context"
	"fmt"

	"evoserve/internal/genome"
	"evoserve/internal/svcerr"
)

// Scorer delegates fitness evaluation for a population to an external
// collaborator. The only implementation in this repo is
// evoserve/internal/scorer.Client; tests use a stub.
type Scorer interface {
	Score(ctx context.Context, task string, genomes []genome.Genome) ([]float64, error)
}

// Create builds a fresh run from cfg, scores its initial population (no
// lock held during that call), applies fitness, derives the run id from
// the run's own post-scoring RNG state, and inserts the run under lock.
func Create(ctx context.Context, reg *Registry, cfg Config, sc Scorer) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	rn := newRun(cfg)
	fitness, err := sc.Score(ctx, cfg.Task, rn.population)
	if err != nil {
		return "", err
	}
	rn.applyFitness(fitness)

	runID := deriveRunID(rn)
	reg.insert(runID, rn)
	return runID, nil
}

// Step computes the next population under lock, releases the lock to
// score it, then reacquires the lock to verify, commit and return a
// snapshot. A missing run yields svcerr.KindNotFound; a scorer failure
// or population-size mismatch on commit yields the scorer's error or
// svcerr.KindInternal respectively, and leaves the run's prior committed
// state untouched.
func Step(ctx context.Context, reg *Registry, runID string, sc Scorer) (Snapshot, error) {
	reg.mu.Lock()
	rn, ok := reg.lookup(runID)
	if !ok {
		reg.mu.Unlock()
		return Snapshot{}, svcerr.NotFound("run not found: " + runID)
	}
	next := rn.nextPopulation()
	task := rn.cfg.Task
	wantSize := len(rn.population)
	reg.mu.Unlock()

	fitness, err := sc.Score(ctx, task, next)
	if err != nil {
		return Snapshot{}, err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	rn, ok = reg.lookup(runID)
	if !ok {
		return Snapshot{}, svcerr.NotFound("run not found: " + runID)
	}
	if len(next) != wantSize {
		return Snapshot{}, svcerr.Internal(
			fmt.Sprintf("population size mismatch: got=%d want=%d", len(next), wantSize), nil)
	}
	rn.commit(next, fitness)
	return rn.snapshot(runID), nil
}

// Advance executes Step sequentially steps times, returning the final
// snapshot. A failure on any step aborts the remaining steps; prior
// steps remain committed.
func Advance(ctx context.Context, reg *Registry, runID string, steps int, sc Scorer) (Snapshot, error) {
	if err := ValidateSteps(steps); err != nil {
		return Snapshot{}, err
	}
	var last Snapshot
	for i := 0; i < steps; i++ {
		snap, err := Step(ctx, reg, runID, sc)
		if err != nil {
			return Snapshot{}, err
		}
		last = snap
	}
	return last, nil
}
