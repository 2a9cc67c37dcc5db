// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/eventbus/internal/version"
	"github.com/stretchr/testify/require"
)

func TestRunDefaultScenario(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, &out)
	require.Equal(t, 0, code)
	require.Equal(t, "Received: 42\n", out.String())
}

func TestRunWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	content := "log:\n  level: warn\ndemo:\n  event: orders\n  args: [\"1\", \"2\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var out bytes.Buffer
	code := run([]string{"-config", path}, &out)
	require.Equal(t, 0, code)
	require.Equal(t, "Received: 1 2\n", out.String())
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{"-version"}, &out)
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(out.String(), version.Version))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "unknown flag", args: []string{"-nope"}, want: 2},
		{name: "missing config", args: []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.Equal(t, tt.want, run(tt.args, &out))
			require.Empty(t, out.String())
		})
	}
}
