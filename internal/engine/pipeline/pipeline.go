// Package pipeline implements the packaging pipeline: freezing the
// application tree into a bundle, building the installer archive, and
// applying or reversing an install on the current user's system.
package pipeline

import (
	"context"
	"time"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names as shown in the renderer.
const (
	StepFreeze    = "freeze"
	StepPackage   = "package"
	StepInstall   = "install"
	StepUninstall = "uninstall"
	StepVerify    = "verify"
)

// Pipeline executes packaging operations and reports progress through a
// renderer. All filesystem effects go through the injected ports.
type Pipeline struct {
	hasher    ports.Hasher
	store     ports.FreezeInfoStore
	archiver  ports.Archiver
	shortcuts ports.ShortcutManager
	autostart ports.AutostartManager
	locator   ports.InstallLocator
	renderer  ports.Renderer
	logger    ports.Logger
}

// New creates a Pipeline with the given dependencies.
func New(
	hasher ports.Hasher,
	store ports.FreezeInfoStore,
	archiver ports.Archiver,
	shortcuts ports.ShortcutManager,
	autostart ports.AutostartManager,
	locator ports.InstallLocator,
	renderer ports.Renderer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		hasher:    hasher,
		store:     store,
		archiver:  archiver,
		shortcuts: shortcuts,
		autostart: autostart,
		locator:   locator,
		renderer:  renderer,
		logger:    logger,
	}
}

// stepFunc is the body of one pipeline step. It reports progress through
// log and returns whether the step was answered from cache.
type stepFunc func(ctx context.Context, log func(string)) (skipped bool, err error)

// runStep executes fn between matching renderer start and complete events.
func (p *Pipeline) runStep(ctx context.Context, name string, fn stepFunc) error {
	p.renderer.OnStepStart(name, time.Now())

	log := func(msg string) { p.renderer.OnStepLog(name, msg) }
	skipped, err := fn(ctx, log)

	p.renderer.OnStepComplete(name, time.Now(), skipped, err)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStepFailed.Error()), "step", name)
	}
	return nil
}
