// Package ollama is a minimal client for the local Ollama HTTP API: the
// health probe, tag listing, and blocking pulls with streamed progress.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultHost is where a stock `ollama serve` listens.
const DefaultHost = "http://127.0.0.1:11434"

// Client talks to a single Ollama host.
type Client struct {
	host   string
	client *http.Client
}

// New returns a client for the given host URL (falling back to DefaultHost).
// The short timeout applies to health/tag requests; pulls use their own
// context since a model download can take minutes.
func New(host string) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:   strings.TrimRight(host, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Host returns the base URL the client probes.
func (c *Client) Host() string { return c.host }

// Health probes the server root. A stock server answers 200 "Ollama is running".
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/", nil)
	if err != nil {
		return err
	}
	logRequest(http.MethodGet, c.host+"/")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama unreachable at %s: %w", c.host, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ollama health check returned %s", resp.Status)
	}
	return nil
}

// Model is one locally available tag as reported by /api/tags.
type Model struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type tagsResponse struct {
	Models []Model `json:"models"`
}

// Tags lists the models present on the host.
func (c *Client) Tags(ctx context.Context) ([]Model, error) {
	endpoint := c.host + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	logRequest(http.MethodGet, endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama: /api/tags returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var tags tagsResponse
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, err
	}
	return tags.Models, nil
}

// Has reports whether the named model is already present. A bare name matches
// its :latest tag, mirroring how Ollama resolves untagged pulls.
func (c *Client) Has(ctx context.Context, name string) (bool, error) {
	models, err := c.Tags(ctx)
	if err != nil {
		return false, err
	}
	want := name
	if !strings.Contains(want, ":") {
		want += ":latest"
	}
	for _, m := range models {
		if m.Name == name || m.Name == want {
			return true, nil
		}
	}
	return false, nil
}

// PullProgress is one status line of a streaming /api/pull response.
type PullProgress struct {
	Status    string `json:"status"`
	Digest    string `json:"digest,omitempty"`
	Total     int64  `json:"total,omitempty"`
	Completed int64  `json:"completed,omitempty"`
	Err       string `json:"error,omitempty"`
}

// Pull downloads a model, invoking onProgress for every status line the server
// streams back. It blocks until the pull succeeds or fails; cancellation goes
// through ctx.
func (c *Client) Pull(ctx context.Context, name string, onProgress func(PullProgress)) error {
	payload, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return err
	}
	endpoint := c.host + "/api/pull"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	logRequest(http.MethodPost, endpoint)

	// no client timeout here; large models legitimately take a long time
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return fmt.Errorf("ollama pull request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ollama: /api/pull returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	for {
		var p PullProgress
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("ollama pull stream: %w", err)
		}
		if p.Err != "" {
			return fmt.Errorf("ollama pull %s: %s", name, p.Err)
		}
		if onProgress != nil {
			onProgress(p)
		}
	}
}
