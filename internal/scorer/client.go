// Package scorer talks to the external fitness service that is the sole
// code path allowed to suspend a generation step for I/O. It knows
// nothing about runs, selection or mutation; it only knows how to serialize a
// task and a population, POST it, and decode a fitness vector back.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"evoserve/internal/genome"
	"evoserve/internal/svcerr"
)

// Client scores populations against one fitness service endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client against baseURL (e.g. "http://127.0.0.1:8090").
// Trailing slashes are trimmed so the client always requests
// "{baseURL}/score".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type scoreRequest struct {
	Task    string          `json:"task"`
	Genomes []genome.Genome `json:"genomes"`
}

type scoreResponse struct {
	Fitness []float64 `json:"fitness"`
}

// Score sends {task, genomes} to "{baseURL}/score" and returns the
// returned fitness vector. Transport, HTTP status and decode failures
// are all returned as svcerr.KindInternal; none are retried. A response
// whose fitness vector length does not match len(genomes) is also
// svcerr.KindInternal; the caller never receives a misaligned vector.
func (c *Client) Score(ctx context.Context, task string, genomes []genome.Genome) ([]float64, error) {
	body, err := json.Marshal(scoreRequest{Task: task, Genomes: genomes})
	if err != nil {
		return nil, svcerr.Internal("encode scorer request", err)
	}

	url := c.baseURL + "/score"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, svcerr.Internal("build scorer request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, svcerr.Internal("fitness request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, svcerr.Internal(fmt.Sprintf("fitness status %d: %s", resp.StatusCode, snippet), nil)
	}

	var decoded scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, svcerr.Internal("fitness decode failed", err)
	}
	if len(decoded.Fitness) != len(genomes) {
		return nil, svcerr.Internal(
			fmt.Sprintf("fitness length mismatch: got=%d want=%d", len(decoded.Fitness), len(genomes)),
			nil,
		)
	}
	return decoded.Fitness, nil
}
