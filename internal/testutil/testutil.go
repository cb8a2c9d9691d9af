package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, filepath.Join(dir, name), fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteFailingStub writes an executable shell stub that prints stderrText to stderr and exits
// with exitCode.
func WriteFailingStub(t *testing.T, dir string, name string, exitCode int, stderrText string) string {
	t.Helper()
	content := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' %q >&2\nexit %d\n", stderrText, exitCode)
	return writeScript(t, filepath.Join(dir, name), content)
}

// WriteFakeGit writes a `git` stub into dir. Each invocation records its arguments, one per
// line, to <stub>.args and creates its last argument as a directory holding a shell script
// named binaryName, mimicking a clone that ships a prebuilt binary.
// The stub path is returned.
func WriteFakeGit(t *testing.T, dir string, binaryName string) string {
	t.Helper()
	content := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" > "$0.args"
for dest; do :; done
mkdir -p "$dest" || exit 1
printf '#!/bin/sh\necho sqleibniz\n' > "$dest/%s"
`, binaryName)
	return writeScript(t, filepath.Join(dir, "git"), content)
}

// WriteFile writes content to dir/name, creating parent directories, and returns the path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

func writeScript(t *testing.T, path string, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
