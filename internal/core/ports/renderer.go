package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples pipeline progress from presentation, allowing the same event
// stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush
	// any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called once with the ordered list of pipeline steps.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a pipeline step begins.
	OnStepStart(name string, startTime time.Time)

	// OnStepLog is called when a step emits a progress message.
	OnStepLog(name, msg string)

	// OnStepComplete is called when a step finishes.
	// skipped marks steps answered from cache; err is nil on success.
	OnStepComplete(name string, endTime time.Time, skipped bool, err error)
}
