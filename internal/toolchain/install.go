package toolchain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/version"
)

// VersionDirName returns the install directory name for a tool version.
func VersionDirName(toolName string, ver string) string {
	return toolName + "-" + ver
}

// EnsureInstalled installs ver into its version directory and returns the binary path.
// An existing binary short-circuits without cloning. After a fresh install the binary is
// marked executable and every other version directory is pruned.
func (m *Manager) EnsureInstalled(ctx context.Context, toolID string, ver string) (string, error) {
	ver = strings.TrimSpace(ver)
	if err := validateVersionDir(ver); err != nil {
		return "", err
	}
	dirName := VersionDirName(m.toolName, ver)
	path := m.VersionPath(ver)
	dir := filepath.Dir(path)

	if isRegularFile(m.sys, path) {
		m.log.Debug().Str("path", path).Msg(messages.ToolchainAlreadyInstalled)
		return path, nil
	}
	if m.noNetwork {
		return "", fmt.Errorf(messages.ToolchainVersionNotInstalledOfflineFmt, ErrNetworkDisabled, ver, path)
	}

	m.status.SetInstallationStatus(toolID, StatusDownloading, ver)
	if err := m.sys.MkdirAll(m.root, 0o755); err != nil {
		return "", fmt.Errorf(messages.ToolchainCreateRootFmt, m.root, err)
	}
	// A failed clone leaves a partial directory that git refuses to clone into.
	if _, err := m.sys.Stat(dir); err == nil {
		m.log.Debug().Str("dir", dir).Msg(messages.ToolchainRemovingPartial)
		if err := m.sys.RemoveAll(dir); err != nil {
			return "", &AcquisitionError{URL: m.sourceURL, Dir: dir, ExitCode: -1, Err: fmt.Errorf(messages.ToolchainRemovePartialFmt, err)}
		}
	}

	m.log.Debug().Str("url", m.sourceURL).Str("dir", dir).Msg(messages.ToolchainCloning)
	if err := m.cloner.Clone(ctx, m.sourceURL, dir); err != nil {
		var acqErr *AcquisitionError
		if !errors.As(err, &acqErr) {
			err = &AcquisitionError{URL: m.sourceURL, Dir: dir, ExitCode: -1, Err: err}
		}
		return "", err
	}
	if err := m.sys.Chmod(path, 0o755); err != nil {
		return "", &PermissionError{Path: path, Err: err}
	}

	report := m.Prune(dirName)
	m.log.Debug().Strs("removed", report.Removed).Int("failed", len(report.Failed)).Msg(messages.ToolchainPruned)
	return path, nil
}

// InstalledVersions returns the versions whose binary is present under the install root,
// oldest first.
func (m *Manager) InstalledVersions() []string {
	return InstalledVersions(m.sys, m.root, m.toolName, m.binaryName)
}

// InstalledVersions lists <toolName>-<version> directories of root that contain binaryName.
// Semver versions are ordered by precedence after any non-semver versions, which sort
// lexically.
func InstalledVersions(sys System, root string, toolName string, binaryName string) []string {
	entries, err := sys.ReadDir(root)
	if err != nil {
		return nil
	}
	prefix := toolName + "-"
	var versions []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		ver := strings.TrimPrefix(name, prefix)
		if ver == "" || !isRegularFile(sys, filepath.Join(root, name, binaryName)) {
			continue
		}
		versions = append(versions, ver)
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versionLess(versions[i], versions[j])
	})
	return versions
}

func versionLess(a string, b string) bool {
	av, aErr := version.Parse(a)
	bv, bErr := version.Parse(b)
	switch {
	case aErr != nil && bErr != nil:
		return a < b
	case aErr != nil:
		return true
	case bErr != nil:
		return false
	}
	return av.LessThan(bv)
}

// validateVersionDir rejects versions that cannot safely name a directory.
func validateVersionDir(ver string) error {
	if ver == "" {
		return fmt.Errorf(messages.ToolchainVersionRequired)
	}
	if ver == "." || ver == ".." || strings.ContainsAny(ver, `/\`) {
		return fmt.Errorf(messages.ToolchainInvalidVersionFmt, ver)
	}
	return nil
}
