// Package toolchain locates, installs and garbage-collects the SQL checker binary.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/platform"
	"github.com/conn-castle/sqltool/internal/release"
)

// Upstream defaults.
const (
	DefaultToolName  = "sqleibniz"
	DefaultRepo      = "xNaCly/sqleibniz"
	DefaultSourceURL = "https://github.com/xNaCly/sqleibniz"
)

// Options configures a Manager. Zero fields take the defaults noted on each field.
type Options struct {
	// Root is the install root holding version directories; "." when empty.
	Root string
	// ToolName names version directories (<ToolName>-<version>); DefaultToolName when empty.
	ToolName string
	// Repo is the owner/name release repository; DefaultRepo when empty.
	Repo string
	// SourceURL is cloned into version directories; DefaultSourceURL when empty.
	SourceURL string
	// Platform selects the binary name; platform.Current() when nil.
	Platform *platform.Platform
	// Release filters the latest release query.
	Release release.Options
	// PruneScope defaults to PruneVersions.
	PruneScope PruneScope
	// NoNetwork skips the release query and clone; only installed versions are used.
	NoNetwork bool

	System   System
	Releases release.Source
	Cloner   Cloner
	Status   StatusReporter
	Logger   *zerolog.Logger
}

// Manager owns the cached executable path for one host session.
// It is not safe for concurrent use.
type Manager struct {
	root       string
	toolName   string
	repo       string
	sourceURL  string
	binaryName string
	release    release.Options
	pruneScope PruneScope
	noNetwork  bool

	sys      System
	releases release.Source
	cloner   Cloner
	status   StatusReporter
	log      zerolog.Logger

	cachedPath string
}

// New returns a Manager with defaults applied to opts.
func New(opts Options) *Manager {
	m := &Manager{
		root:       opts.Root,
		toolName:   opts.ToolName,
		repo:       opts.Repo,
		sourceURL:  opts.SourceURL,
		release:    opts.Release,
		pruneScope: opts.PruneScope,
		noNetwork:  opts.NoNetwork,
		sys:        opts.System,
		releases:   opts.Releases,
		cloner:     opts.Cloner,
		status:     opts.Status,
		log:        loggerOrNop(opts.Logger),
	}
	if m.root == "" {
		m.root = "."
	}
	if m.toolName == "" {
		m.toolName = DefaultToolName
	}
	if m.repo == "" {
		m.repo = DefaultRepo
	}
	if m.sourceURL == "" {
		m.sourceURL = DefaultSourceURL
	}
	if m.pruneScope == "" {
		m.pruneScope = PruneVersions
	}
	p := platform.Current()
	if opts.Platform != nil {
		p = *opts.Platform
	}
	m.binaryName = p.BinaryName()
	if m.sys == nil {
		m.sys = RealSystem{}
	}
	if m.releases == nil {
		m.releases = release.GitHub{}
	}
	if m.cloner == nil {
		m.cloner = Git{}
	}
	if m.status == nil {
		m.status = discardStatus{}
	}
	return m
}

// Root returns the install root.
func (m *Manager) Root() string { return m.root }

// BinaryName returns the platform binary name the manager looks for.
func (m *Manager) BinaryName() string { return m.binaryName }

// ToolName returns the version directory prefix.
func (m *Manager) ToolName() string { return m.toolName }

// VersionPath returns where the binary of ver lives once installed.
func (m *Manager) VersionPath(ver string) string {
	return filepath.Join(m.root, VersionDirName(m.toolName, ver), m.binaryName)
}

// CachedPath returns the cached executable path if it still names a regular file.
func (m *Manager) CachedPath() (string, bool) {
	if isRegularFile(m.sys, m.cachedPath) {
		return m.cachedPath, true
	}
	return "", false
}

// Locate runs the cache and PATH lookup without installing. A PATH hit becomes the cached path.
func (m *Manager) Locate(wt Worktree) (string, error) {
	path, err := Locate(m.sys, m.cachedPath, m.binaryName, wt)
	if err != nil {
		return "", err
	}
	m.cachedPath = path
	return path, nil
}

// ExecutablePath returns a runnable checker executable, installing the latest release when
// neither the cache nor the worktree PATH provides one. The cached path is only updated after
// a fully successful step.
func (m *Manager) ExecutablePath(ctx context.Context, toolID string, wt Worktree) (string, error) {
	path, err := m.Locate(wt)
	if err == nil {
		m.log.Debug().Str("path", path).Msg(messages.ToolchainLocated)
		return path, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}
	return m.Install(ctx, toolID, "")
}

// Install installs ver, or the latest release when ver is empty, and caches the result.
// Unlike ExecutablePath it never consults the cache or PATH first.
func (m *Manager) Install(ctx context.Context, toolID string, ver string) (string, error) {
	if strings.TrimSpace(ver) == "" {
		m.status.SetInstallationStatus(toolID, StatusCheckingForUpdate, "")
		target, err := m.targetVersion(ctx)
		if err != nil {
			return "", err
		}
		ver = target
	}
	path, err := m.EnsureInstalled(ctx, toolID, ver)
	if err != nil {
		return "", err
	}
	m.cachedPath = path
	return path, nil
}

// targetVersion returns the version to install: the latest upstream release, or the newest
// installed version when network access is disabled.
func (m *Manager) targetVersion(ctx context.Context) (string, error) {
	if m.noNetwork {
		newest, ok := m.NewestInstalled()
		if !ok {
			return "", fmt.Errorf(messages.ToolchainNotInstalledOfflineFmt, ErrNetworkDisabled, m.toolName, m.root)
		}
		return newest, nil
	}
	rel, err := m.releases.Latest(ctx, m.repo, m.release)
	if err != nil {
		return "", fmt.Errorf(messages.ToolchainReleaseLookupFmt, ErrReleaseLookup, m.repo, err)
	}
	m.log.Debug().Str("repo", m.repo).Str("version", rel.Version).Msg(messages.ToolchainLatestRelease)
	return rel.Version, nil
}

// NewestInstalled returns the highest installed version, if any.
func (m *Manager) NewestInstalled() (string, bool) {
	installed := m.InstalledVersions()
	if len(installed) == 0 {
		return "", false
	}
	return installed[len(installed)-1], true
}

// CheckForUpdate compares the newest installed version with the latest release.
func (m *Manager) CheckForUpdate(ctx context.Context) (release.CheckResult, error) {
	if m.noNetwork {
		return release.CheckResult{}, ErrNetworkDisabled
	}
	installed, _ := m.NewestInstalled()
	return release.Check(ctx, m.releases, m.repo, installed, m.release)
}

// Prune removes stale entries of the install root, keeping keepDir.
func (m *Manager) Prune(keepDir string) PruneReport {
	return Prune(m.sys, m.root, keepDir, PruneOptions{Scope: m.pruneScope, ToolName: m.toolName, Logger: &m.log})
}
