// Package root locates the project a sqltool invocation runs for.
package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/sqltool/internal/messages"
)

// MarkerDir is the per-project settings directory that marks a project root.
const MarkerDir = ".sqltool"

// FindSqltoolRoot searches upwards from start for a .sqltool directory.
// A .sqltool entry that is not a directory is an error.
func FindSqltoolRoot(start string) (string, bool, error) {
	return findUp(start, func(dir string) (bool, error) {
		info, err := os.Stat(filepath.Join(dir, MarkerDir))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return false, nil
			}
			return false, fmt.Errorf(messages.RootStatFmt, filepath.Join(dir, MarkerDir), err)
		}
		if !info.IsDir() {
			return false, fmt.Errorf(messages.RootMarkerNotDirFmt, filepath.Join(dir, MarkerDir))
		}
		return true, nil
	})
}

// FindProjectRoot returns the nearest ancestor of start holding .sqltool, else the nearest
// holding .git (a directory or a worktree file), else start itself.
func FindProjectRoot(start string) (string, error) {
	dir, found, err := FindSqltoolRoot(start)
	if err != nil {
		return "", err
	}
	if found {
		return dir, nil
	}
	dir, found, err = findUp(start, func(dir string) (bool, error) {
		info, err := os.Lstat(filepath.Join(dir, ".git"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return false, nil
			}
			return false, fmt.Errorf(messages.RootStatFmt, filepath.Join(dir, ".git"), err)
		}
		return info.IsDir() || info.Mode().IsRegular(), nil
	})
	if err != nil {
		return "", err
	}
	if found {
		return dir, nil
	}
	return filepath.Abs(start)
}

func findUp(start string, match func(dir string) (bool, error)) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.RootStartRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf(messages.RootAbsFmt, start, err)
	}
	for {
		ok, err := match(dir)
		if err != nil {
			return "", false, err
		}
		if ok {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
