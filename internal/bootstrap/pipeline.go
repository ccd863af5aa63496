package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// timeUnit rounds step durations in the summary output.
const timeUnit = 10 * time.Millisecond

// ErrSkipped is returned by a step that verified there was nothing left to do
// (binary already installed, server already up). The runner records it and
// moves on; it is not a failure.
var ErrSkipped = errors.New("nothing to do")

// Step is one fallible unit of the bootstrap sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepResult is the typed outcome of one executed step.
type StepResult struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

func (r StepResult) Failed() bool { return r.Err != nil }

// Runner executes steps strictly in order and stops at the first failure.
// There is no rollback; idempotence lives inside the steps themselves.
type Runner struct {
	steps []Step
}

func NewRunner(steps ...Step) *Runner { return &Runner{steps: steps} }

// Run returns the results of every step that executed. The error, if any,
// names the step that stopped the pipeline.
func (r *Runner) Run(ctx context.Context) ([]StepResult, error) {
	results := make([]StepResult, 0, len(r.steps))
	for _, s := range r.steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		err := s.Run(ctx)
		res := StepResult{Name: s.Name, Duration: time.Since(start)}
		if errors.Is(err, ErrSkipped) {
			res.Skipped = true
			err = nil
		}
		res.Err = err
		results = append(results, res)
		if err != nil {
			return results, fmt.Errorf("step %s: %w", s.Name, err)
		}
	}
	return results, nil
}
