// Package worktree adapts a local project directory and environment to toolchain.Worktree.
package worktree

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Local is a worktree rooted on the local filesystem whose PATH comes from env.
type Local struct {
	root string
	env  []string
}

// New returns a Local worktree. env is a KEY=value list such as os.Environ().
func New(root string, env []string) *Local {
	return &Local{root: root, env: append([]string(nil), env...)}
}

// Root returns the worktree root directory.
func (l *Local) Root() string { return l.root }

// Which looks name up on the worktree's PATH. Relative PATH entries resolve against Root.
// Only executable regular files match.
func (l *Local) Which(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	for _, dir := range filepath.SplitList(l.lookupEnv("PATH")) {
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(l.root, dir)
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// lookupEnv returns the last value of key in env. Keys are case-insensitive on Windows.
func (l *Local) lookupEnv(key string) string {
	value := ""
	for _, kv := range l.env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if k == key || (runtime.GOOS == "windows" && strings.EqualFold(k, key)) {
			value = v
		}
	}
	return value
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
