// Package linear provides a synchronous, line-oriented renderer for CI
// environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.frostpack.dev/frost/internal/ui/output"
)

// Renderer implements ports.Renderer for CI/non-interactive environments.
// It prints chronological logs with step name prefixes.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	start map[string]time.Time
}

// NewRenderer creates a new linear Renderer.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stderr, termenv.WithProfile(output.ColorProfileANSI())),
		start:  make(map[string]time.Time),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op; all output is written eagerly.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op for the linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the planned steps.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Running %d step(s): %v\n", len(steps), steps)
}

// OnStepStart prints a step start message.
func (r *Renderer) OnStepStart(name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.start[name] = startTime
	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStepLog prints a progress message with the step prefix.
func (r *Renderer) OnStepLog(name, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, msg)
}

// OnStepComplete prints the completion status.
func (r *Renderer) OnStepComplete(name string, endTime time.Time, skipped bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := endTime.Sub(r.start[name])
	delete(r.start, name)
	prefix := fmt.Sprintf("[%s]", name)

	switch {
	case err != nil:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	case skipped:
		symbol := r.output.String("~").Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Up to date, skipped\n", prefix, symbol)
	default:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}
}
