package toolchain

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/conn-castle/sqltool/internal/release"
)

// testSystem provides a mock System for unit tests.
//
// Every method checks its Func field first and falls back to RealSystem, so tests build
// fixtures under t.TempDir() and only override the call they need to fail. Calls are counted
// per method.
type testSystem struct {
	RealSystem

	StatFunc      func(name string) (fs.FileInfo, error)
	ReadDirFunc   func(name string) ([]fs.DirEntry, error)
	MkdirAllFunc  func(path string, perm fs.FileMode) error
	RemoveAllFunc func(path string) error
	ChmodFunc     func(name string, mode fs.FileMode) error

	mu    sync.Mutex
	calls map[string]int
}

func (s *testSystem) count(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[method]++
}

func (s *testSystem) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *testSystem) Stat(name string) (fs.FileInfo, error) {
	s.count("Stat")
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	s.count("ReadDir")
	if s.ReadDirFunc != nil {
		return s.ReadDirFunc(name)
	}
	return s.RealSystem.ReadDir(name)
}

func (s *testSystem) MkdirAll(path string, perm fs.FileMode) error {
	s.count("MkdirAll")
	if s.MkdirAllFunc != nil {
		return s.MkdirAllFunc(path, perm)
	}
	return s.RealSystem.MkdirAll(path, perm)
}

func (s *testSystem) RemoveAll(path string) error {
	s.count("RemoveAll")
	if s.RemoveAllFunc != nil {
		return s.RemoveAllFunc(path)
	}
	return s.RealSystem.RemoveAll(path)
}

func (s *testSystem) Chmod(name string, mode fs.FileMode) error {
	s.count("Chmod")
	if s.ChmodFunc != nil {
		return s.ChmodFunc(name, mode)
	}
	return s.RealSystem.Chmod(name, mode)
}

// fakeWorktree answers Which from a fixed table and counts lookups.
type fakeWorktree struct {
	root    string
	paths   map[string]string
	lookups int
}

func (w *fakeWorktree) Root() string { return w.root }

func (w *fakeWorktree) Which(name string) (string, bool) {
	w.lookups++
	path, ok := w.paths[name]
	return path, ok
}

// fakeReleases returns a fixed release or error and counts queries.
type fakeReleases struct {
	version string
	err     error
	calls   int
	repo    string
	opts    release.Options
}

func (f *fakeReleases) Latest(_ context.Context, repo string, opts release.Options) (release.Release, error) {
	f.calls++
	f.repo = repo
	f.opts = opts
	if f.err != nil {
		return release.Release{}, f.err
	}
	return release.Release{Version: f.version}, nil
}

// fakeCloner materializes dest with a non-executable binary, or runs fail when set.
type fakeCloner struct {
	binaryName string
	fail       func(url string, dest string) error
	calls      int
	urls       []string
}

func (c *fakeCloner) Clone(_ context.Context, url string, dest string) error {
	c.calls++
	c.urls = append(c.urls, url)
	if c.fail != nil {
		if err := c.fail(url, dest); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dest, c.binaryName), []byte("#!/bin/sh\n"), 0o644)
}

// recordingStatus captures reported installation states in order.
type recordingStatus struct {
	statuses []InstallationStatus
	details  []string
}

func (r *recordingStatus) SetInstallationStatus(_ string, status InstallationStatus, detail string) {
	r.statuses = append(r.statuses, status)
	r.details = append(r.details, detail)
}
