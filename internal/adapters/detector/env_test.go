package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.frostpack.dev/frost/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")

	// Regardless of the TTY state, CI always means linear output.
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		want     detector.OutputMode
	}{
		{name: "empty flag keeps detection", detected: detector.ModeTUI, flag: "", want: detector.ModeTUI},
		{name: "auto keeps detection", detected: detector.ModeLinear, flag: "auto", want: detector.ModeLinear},
		{name: "tui overrides", detected: detector.ModeLinear, flag: "tui", want: detector.ModeTUI},
		{name: "linear overrides", detected: detector.ModeTUI, flag: "linear", want: detector.ModeLinear},
		{name: "ci maps to linear", detected: detector.ModeTUI, flag: "ci", want: detector.ModeLinear},
		{name: "unknown flag keeps detection", detected: detector.ModeTUI, flag: "fancy", want: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
