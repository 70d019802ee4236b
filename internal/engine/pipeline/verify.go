package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Check is one verification outcome. Err is nil when the check passed.
type Check struct {
	Name string
	Err  error
}

// VerifyReport collects the outcome of all configuration checks.
type VerifyReport struct {
	Checks []Check
}

// Failed returns the number of failed checks.
func (r *VerifyReport) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

// Verify checks the configuration and any produced artifacts for
// consistency without changing anything. It returns the full report and
// ErrVerifyFailed when at least one check failed.
func (p *Pipeline) Verify(ctx context.Context, m *domain.Manifest) (*VerifyReport, error) {
	p.renderer.OnPlanEmit([]string{StepVerify})

	report := &VerifyReport{}
	err := p.runStep(ctx, StepVerify, func(_ context.Context, log func(string)) (bool, error) {
		p.runChecks(m, report, log)
		if failed := report.Failed(); failed > 0 {
			return false, zerr.With(domain.ErrVerifyFailed, "failed", failed)
		}
		return false, nil
	})
	if err != nil {
		return report, err
	}
	return report, nil
}

func (p *Pipeline) runChecks(m *domain.Manifest, report *VerifyReport, log func(string)) {
	add := func(name string, err error) {
		report.Checks = append(report.Checks, Check{Name: name, Err: err})
		if err != nil {
			log(fmt.Sprintf("%s: %v", name, err))
		}
	}

	add("freeze manifest", m.Freeze.Validate())
	add("installer manifest", m.Installer.Validate())
	add("freeze inputs", checkFreezeInputs(m))

	bundleDir := filepath.Join(m.Root, domain.DistDirName, m.Freeze.Output)
	if _, err := os.Stat(bundleDir); err == nil {
		add("bundle metadata", p.checkBundle(m, bundleDir))
	}

	archivePath := filepath.Join(m.Root, domain.DistDirName, m.Installer.OutputName)
	if _, err := os.Stat(archivePath); err == nil {
		add("installer archive", p.checkArchive(m, archivePath))
	}
}

// checkBundle verifies an existing bundle against the freeze manifest:
// the recorded name must match and the staged content must be unmodified.
func (p *Pipeline) checkBundle(m *domain.Manifest, bundleDir string) error {
	meta, err := readBundleMeta(bundleDir)
	if err != nil {
		return err
	}
	if meta.Name != m.Freeze.Output {
		return zerr.With(domain.ErrBundleNameMismatch, "bundle", meta.Name)
	}
	return nil
}

// checkArchive verifies that an existing installer archive carries the
// manifest's application identity.
func (p *Pipeline) checkArchive(m *domain.Manifest, archivePath string) error {
	embedded, err := p.archiver.ReadManifest(archivePath)
	if err != nil {
		return err
	}
	if embedded.AppID != m.Installer.AppID {
		err := zerr.With(domain.ErrVerifyFailed, "archive_app_id", embedded.AppID)
		return zerr.With(err, "app_id", m.Installer.AppID)
	}
	return nil
}
