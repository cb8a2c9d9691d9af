package toolchain

import (
	"io/fs"
	"os"
)

// System abstracts the filesystem operations the toolchain manager performs.
// Tests substitute a double to count and fail individual calls.
type System interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error
	Chmod(name string, mode fs.FileMode) error
}

// RealSystem implements System using the os package.
type RealSystem struct{}

// Stat returns the FileInfo for name, following symlinks.
func (RealSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir returns the entries of the named directory.
func (RealSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// MkdirAll creates path and any missing parents.
func (RealSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and anything it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(sys System, path string) bool {
	if path == "" {
		return false
	}
	info, err := sys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
