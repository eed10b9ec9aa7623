package evo

import "evoserve/internal/svcerr"

// Config is one run's immutable configuration, validated once at create
// time and never mutated afterward.
type Config struct {
	Seed         int64
	Population   int
	Generations  int
	MutationRate float64
	Task         string
}

// Validate checks Config against the accepted bounds for a new run.
// Generations is validated but never enforced as a hard cap on advance;
// it is advisory, recorded for callers that want to track progress
// against a target.
func (c Config) Validate() error {
	if c.Population < 1 || c.Population > 5000 {
		return svcerr.BadRequest("population must be in [1, 5000]")
	}
	if c.Generations < 1 || c.Generations > 1_000_000 {
		return svcerr.BadRequest("generations must be in [1, 1000000]")
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return svcerr.BadRequest("mutation_rate must be in [0, 1]")
	}
	if c.Task == "" {
		return svcerr.BadRequest("task must be non-empty")
	}
	return nil
}

// ValidateSteps checks the accepted bounds for an advance step count.
func ValidateSteps(steps int) error {
	if steps < 1 || steps > 10_000 {
		return svcerr.BadRequest("steps must be in [1, 10000]")
	}
	return nil
}
