package root

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func TestFindSqltoolRootFound(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, ".sqltool"))
	sub := filepath.Join(root, "a", "b")
	mkdirAll(t, sub)

	got, found, err := FindSqltoolRoot(sub)
	if err != nil {
		t.Fatalf("FindSqltoolRoot error: %v", err)
	}
	if !found {
		t.Fatalf("expected root to be found")
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindSqltoolRootMissing(t *testing.T) {
	root := t.TempDir()
	got, found, err := FindSqltoolRoot(root)
	if err != nil {
		t.Fatalf("FindSqltoolRoot error: %v", err)
	}
	if found {
		t.Fatalf("expected not found, got %s", got)
	}
}

func TestFindSqltoolRootFileError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".sqltool"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := FindSqltoolRoot(root); err == nil {
		t.Fatalf("expected error for file .sqltool")
	}
}

func TestFindProjectRootPrefersSqltool(t *testing.T) {
	outer := t.TempDir()
	mkdirAll(t, filepath.Join(outer, ".git"))
	project := filepath.Join(outer, "db")
	mkdirAll(t, filepath.Join(project, ".sqltool"))
	sub := filepath.Join(project, "migrations")
	mkdirAll(t, sub)

	got, err := FindProjectRoot(sub)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != project {
		t.Fatalf("expected root %s, got %s", project, got)
	}
}

func TestFindProjectRootUsesGit(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, ".git"))
	sub := filepath.Join(root, "nested")
	mkdirAll(t, sub)

	got, err := FindProjectRoot(sub)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindProjectRootUsesGitFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: .git/worktrees/x\n"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	got, err := FindProjectRoot(root)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindProjectRootFallsBackToStart(t *testing.T) {
	root := t.TempDir()
	got, err := FindProjectRoot(root)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindRootsRequireStartPath(t *testing.T) {
	if _, _, err := FindSqltoolRoot(""); err == nil {
		t.Fatal("expected FindSqltoolRoot to reject empty start")
	}
	if _, err := FindProjectRoot(""); err == nil {
		t.Fatal("expected FindProjectRoot to reject empty start")
	}
}
