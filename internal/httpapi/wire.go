package httpapi

import (
	"evoserve/internal/evo"
	"evoserve/internal/genome"
)

// runConfigRequest is the POST /runs request body.
type runConfigRequest struct {
	Seed         int64   `json:"seed"`
	Population   int     `json:"population"`
	Generations  int     `json:"generations"`
	MutationRate float64 `json:"mutation_rate"`
	Task         string  `json:"task"`
}

func (r runConfigRequest) toConfig() evo.Config {
	return evo.Config{
		Seed:         r.Seed,
		Population:   r.Population,
		Generations:  r.Generations,
		MutationRate: r.MutationRate,
		Task:         r.Task,
	}
}

// createRunResponse is the POST /runs success body.
type createRunResponse struct {
	RunID string `json:"run_id"`
}

// runStateResponse mirrors RunState from the external interface table:
// it carries every field a snapshot exposes.
type runStateResponse struct {
	RunID        string        `json:"run_id"`
	Generation   int           `json:"generation"`
	BestFitness  float64       `json:"best_fitness"`
	BestGenome   genome.Genome `json:"best_genome"`
	Seed         int64         `json:"seed"`
	Population   int           `json:"population"`
	Generations  int           `json:"generations"`
	MutationRate float64       `json:"mutation_rate"`
	Task         string        `json:"task"`
}

func runStateFromSnapshot(snap evo.Snapshot) runStateResponse {
	return runStateResponse{
		RunID:        snap.RunID,
		Generation:   snap.Generation,
		BestFitness:  snap.BestFitness,
		BestGenome:   snap.BestGenome,
		Seed:         snap.Seed,
		Population:   snap.Population,
		Generations:  snap.Generations,
		MutationRate: snap.MutationRate,
		Task:         snap.Task,
	}
}

// historyPointResponse is one (generation, best_fitness) sample.
type historyPointResponse struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
}

// historyResponse is the GET /runs/{id}/history success body.
type historyResponse struct {
	RunID  string                 `json:"run_id"`
	Task   string                 `json:"task"`
	Points []historyPointResponse `json:"points"`
}

func historyFromHistory(h evo.History) historyResponse {
	points := make([]historyPointResponse, len(h.Points))
	for i, p := range h.Points {
		points[i] = historyPointResponse{Generation: p.Generation, BestFitness: p.BestFitness}
	}
	return historyResponse{RunID: h.RunID, Task: h.Task, Points: points}
}

// advanceRequest is the POST /runs/{id}/advance request body.
type advanceRequest struct {
	Steps int `json:"steps"`
}

// listRunsResponse is the GET /runs success body.
type listRunsResponse struct {
	RunIDs []string `json:"run_ids"`
}

// errorResponse is the body every non-2xx response carries.
type errorResponse struct {
	Error string `json:"error"`
}
