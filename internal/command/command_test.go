package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sqltool/internal/platform"
	"github.com/conn-castle/sqltool/internal/release"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

type stubSettings struct {
	override Override
	ok       bool
	err      error
	calls    int
}

func (s *stubSettings) BinaryOverride(string, toolchain.Worktree) (Override, bool, error) {
	s.calls++
	return s.override, s.ok, s.err
}

type stubResolver struct {
	path  string
	err   error
	calls int
}

func (r *stubResolver) ExecutablePath(context.Context, string, toolchain.Worktree) (string, error) {
	r.calls++
	return r.path, r.err
}

type stubWorktree struct{ lookups int }

func (w *stubWorktree) Root() string { return "/work" }

func (w *stubWorktree) Which(string) (string, bool) {
	w.lookups++
	return "", false
}

type statusRecorder struct {
	statuses []toolchain.InstallationStatus
	details  []string
}

func (r *statusRecorder) SetInstallationStatus(_ string, s toolchain.InstallationStatus, detail string) {
	r.statuses = append(r.statuses, s)
	r.details = append(r.details, detail)
}

func TestBuildOverridePathBypassesResolver(t *testing.T) {
	settings := &stubSettings{ok: true, override: Override{Path: "/opt/sql_tool", Arguments: []string{"--lsp"}}}
	resolver := &stubResolver{path: "/cache/sql_tool"}
	a := &Assembler{Settings: settings, Resolver: resolver}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, LaunchSpec{Command: "/opt/sql_tool", Args: []string{"--lsp"}, Env: map[string]string{}}, spec)
	assert.Zero(t, resolver.calls)
}

func TestBuildOverrideBypassesToolchainWithoutIO(t *testing.T) {
	releases := &countingReleases{}
	cloner := &countingCloner{}
	manager := toolchain.New(toolchain.Options{Root: t.TempDir(), Releases: releases, Cloner: cloner})
	wt := &stubWorktree{}
	a := &Assembler{
		Settings: &stubSettings{ok: true, override: Override{Path: "/opt/sql_tool"}},
		Resolver: manager,
	}

	spec, err := a.Build(context.Background(), wt, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, "/opt/sql_tool", spec.Command)
	assert.Empty(t, spec.Args)
	assert.NotNil(t, spec.Args)
	assert.Zero(t, wt.lookups)
	assert.Zero(t, releases.calls)
	assert.Zero(t, cloner.calls)
}

func TestBuildWithoutOverrideUsesResolver(t *testing.T) {
	resolver := &stubResolver{path: "sqleibniz-1.4.0/sql_tool"}
	a := &Assembler{Settings: &stubSettings{}, Resolver: resolver}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, "sqleibniz-1.4.0/sql_tool", spec.Command)
	assert.Equal(t, []string{}, spec.Args)
	assert.Equal(t, map[string]string{}, spec.Env)
	assert.Equal(t, 1, resolver.calls)
}

func TestBuildArgumentsWithoutPathApplyToResolvedBinary(t *testing.T) {
	a := &Assembler{
		Settings: &stubSettings{ok: true, override: Override{Arguments: []string{"-i", "stdin"}}},
		Resolver: &stubResolver{path: "/cache/sql_tool"},
	}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, "/cache/sql_tool", spec.Command)
	assert.Equal(t, []string{"-i", "stdin"}, spec.Args)
}

func TestBuildSettingsErrorIsIgnored(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	a := &Assembler{
		Settings: &stubSettings{err: errors.New("broken settings")},
		Resolver: &stubResolver{path: "/cache/sql_tool"},
		Logger:   &logger,
	}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, "/cache/sql_tool", spec.Command)
	assert.Contains(t, logs.String(), "broken settings")
}

func TestBuildNilSettings(t *testing.T) {
	a := &Assembler{Resolver: &stubResolver{path: "/cache/sql_tool"}}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, "/cache/sql_tool", spec.Command)
}

func TestBuildFailureReportsStatusFailed(t *testing.T) {
	status := &statusRecorder{}
	resolveErr := errors.New("release lookup failed: boom")
	a := &Assembler{Resolver: &stubResolver{err: resolveErr}, Status: status}

	_, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	assert.ErrorIs(t, err, resolveErr)
	assert.Equal(t, []toolchain.InstallationStatus{toolchain.StatusFailed}, status.statuses)
	assert.Equal(t, []string{resolveErr.Error()}, status.details)
}

func TestBuildRequiresResolver(t *testing.T) {
	_, err := (&Assembler{}).Build(context.Background(), &stubWorktree{}, "sqleibniz")
	assert.Error(t, err)
}

func TestLaunchSpecJSON(t *testing.T) {
	data, err := json.Marshal(LaunchSpec{Command: "sql_tool", Args: []string{}, Env: map[string]string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"sql_tool","args":[],"env":{}}`, string(data))
}

func TestBuildEndToEndInstallsLatestRelease(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "sqleibniz-1.3.0")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	linux := platform.Platform{OS: platform.Linux}
	status := &statusRecorder{}
	manager := toolchain.New(toolchain.Options{
		Root:     root,
		Platform: &linux,
		Releases: &countingReleases{version: "1.4.0"},
		Cloner:   &countingCloner{},
		Status:   status,
	})
	a := &Assembler{Resolver: manager, Status: status}

	spec, err := a.Build(context.Background(), &stubWorktree{}, "sqleibniz")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sqleibniz-1.4.0", "sql_tool"), spec.Command)
	assert.NoDirExists(t, stale)
	cached, ok := manager.CachedPath()
	require.True(t, ok)
	assert.Equal(t, spec.Command, cached)
	assert.Equal(t, []toolchain.InstallationStatus{toolchain.StatusCheckingForUpdate, toolchain.StatusDownloading}, status.statuses)
}

type countingReleases struct {
	version string
	calls   int
}

func (r *countingReleases) Latest(context.Context, string, release.Options) (release.Release, error) {
	r.calls++
	return release.Release{Version: r.version}, nil
}

type countingCloner struct{ calls int }

func (c *countingCloner) Clone(_ context.Context, _ string, dest string) error {
	c.calls++
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dest, platform.BaseBinaryName), []byte("#!/bin/sh\n"), 0o644)
}
