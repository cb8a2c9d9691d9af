// Package release queries upstream releases of the SQL checker.
package release

import (
	"context"
	"fmt"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/version"
)

// Source returns the latest release of a repository.
type Source interface {
	Latest(ctx context.Context, repo string, opts Options) (Release, error)
}

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Installed string
	Latest    string
	Outdated  bool
}

// Check fetches the latest release of repo and compares it to installed.
// An empty installed version is always reported as outdated.
func Check(ctx context.Context, src Source, repo string, installed string, opts Options) (CheckResult, error) {
	if src == nil {
		return CheckResult{}, fmt.Errorf(messages.ReleaseSourceRequired)
	}
	latest, err := src.Latest(ctx, repo, opts)
	if err != nil {
		return CheckResult{}, err
	}
	result := CheckResult{Installed: installed, Latest: latest.Version}
	if installed == "" {
		result.Outdated = true
		return result, nil
	}
	cmp, err := version.Compare(installed, latest.Version)
	if err != nil {
		// Non-semver tags can only be compared for equality.
		result.Outdated = installed != latest.Version
		return result, nil
	}
	result.Outdated = cmp < 0
	return result, nil
}
