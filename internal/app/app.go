// Package app implements the application layer for frost.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.frostpack.dev/frost/internal/adapters/detector"
	"go.frostpack.dev/frost/internal/adapters/linear"
	"go.frostpack.dev/frost/internal/adapters/tui"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.frostpack.dev/frost/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hasher       ports.Hasher
	store        ports.FreezeInfoStore
	archiver     ports.Archiver
	shortcuts    ports.ShortcutManager
	autostart    ports.AutostartManager
	locator      ports.InstallLocator
	logger       ports.Logger
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	hasher ports.Hasher,
	store ports.FreezeInfoStore,
	archiver ports.Archiver,
	shortcuts ports.ShortcutManager,
	autostart ports.AutostartManager,
	locator ports.InstallLocator,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hasher:       hasher,
		store:        store,
		archiver:     archiver,
		shortcuts:    shortcuts,
		autostart:    autostart,
		locator:      locator,
		logger:       log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration shared by the pipeline commands.
type RunOptions struct {
	NoCache    bool
	OutputMode string
}

// Freeze stages the application tree into a bundle.
func (a *App) Freeze(ctx context.Context, opts RunOptions) error {
	m, err := a.loadManifest()
	if err != nil {
		return err
	}
	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		_, err := p.Freeze(ctx, m, opts.NoCache)
		return err
	})
}

// Package builds the installer archive from an existing bundle.
func (a *App) Package(ctx context.Context, opts RunOptions) error {
	m, err := a.loadManifest()
	if err != nil {
		return err
	}
	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		_, err := p.Package(ctx, m)
		return err
	})
}

// Build freezes the bundle and builds the installer in one run.
func (a *App) Build(ctx context.Context, opts RunOptions) error {
	m, err := a.loadManifest()
	if err != nil {
		return err
	}
	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		_, err := p.Build(ctx, m, opts.NoCache)
		return err
	})
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Archive is the installer archive path. Empty means the archive the
	// current project configuration produces under dist/.
	Archive    string
	Desktop    *bool
	Autostart  *bool
	Launch     *bool
	Language   string
	OutputMode string
}

// Install applies an installer archive to the current user's system.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	archive := opts.Archive
	if archive == "" {
		m, err := a.loadManifest()
		if err != nil {
			return err
		}
		archive = defaultArchivePath(m)
	}

	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		res, err := p.Install(ctx, archive, pipeline.InstallOptions{
			Desktop:   opts.Desktop,
			Autostart: opts.Autostart,
			Launch:    opts.Launch,
			Language:  domain.Language(opts.Language),
		})
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("installed %s %s to %s", res.Receipt.AppName, res.Receipt.Version, res.InstallDir))
		return nil
	})
}

// UninstallOptions configuration for the Uninstall method.
type UninstallOptions struct {
	OutputMode string
}

// Uninstall removes the application the current project configuration
// describes from the user's system.
func (a *App) Uninstall(ctx context.Context, opts UninstallOptions) error {
	m, err := a.loadManifest()
	if err != nil {
		return err
	}
	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		res, err := p.Uninstall(ctx, &m.Installer)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("removed %s from %s", m.Installer.AppName, res.InstallDir))
		return nil
	})
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	OutputMode string
}

// Verify checks the configuration and artifacts for consistency.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) error {
	m, err := a.loadManifest()
	if err != nil {
		return err
	}
	return a.runPipeline(ctx, opts.OutputMode, func(ctx context.Context, p *pipeline.Pipeline) error {
		report, err := p.Verify(ctx, m)
		for _, c := range report.Checks {
			if c.Err == nil {
				a.logger.Info(fmt.Sprintf("%s: ok", c.Name))
			}
		}
		return err
	})
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Cache bool
	Dist  bool
}

// Clean removes freeze cache and build artifacts based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	root, err := a.configLoader.DiscoverRoot(".")
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Cache {
		remove(filepath.Join(root, domain.DefaultStorePath()), "freeze info store")
	}
	if options.Dist {
		remove(filepath.Join(root, domain.DefaultDistPath()), "build artifacts")
	}

	return errs
}

// loadManifest loads and validates the project configuration.
func (a *App) loadManifest() (*domain.Manifest, error) {
	m, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return m, nil
}

// runPipeline runs fn with a renderer selected for the environment,
// keeping the renderer and the pipeline in separate goroutines.
func (a *App) runPipeline(ctx context.Context, outputMode string, fn func(context.Context, *pipeline.Pipeline) error) error {
	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, outputMode)

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel()
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(model, optsTea...)
	} else {
		renderer = linear.NewRenderer(os.Stdout, os.Stderr)
	}

	p := pipeline.New(
		a.hasher,
		a.store,
		a.archiver,
		a.shortcuts,
		a.autostart,
		a.locator,
		renderer,
		a.logger,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "Pipeline panic: %v\n", r)
			}
			_ = renderer.Stop()
		}()
		if err := fn(ctx, p); err != nil {
			return errors.Join(domain.ErrPipelineFailed, err)
		}
		return nil
	})

	return g.Wait()
}

func defaultArchivePath(m *domain.Manifest) string {
	return filepath.Join(m.Root, domain.DistDirName, m.Installer.OutputName)
}
