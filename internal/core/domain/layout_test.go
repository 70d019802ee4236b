package domain_test

import (
	"path/filepath"
	"testing"

	"go.frostpack.dev/frost/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultFrostPath",
			got:      domain.DefaultFrostPath(),
			expected: ".frost",
		},
		{
			name:     "DefaultStorePath",
			got:      domain.DefaultStorePath(),
			expected: filepath.Join(".frost", "store"),
		},
		{
			name:     "DefaultDistPath",
			got:      domain.DefaultDistPath(),
			expected: "dist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
