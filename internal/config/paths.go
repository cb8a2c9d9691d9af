package config

import "path/filepath"

// Dir is the per-project settings directory name.
const Dir = ".sqltool"

// Paths holds resolved paths for config files and directories.
type Paths struct {
	Root       string
	ConfigDir  string
	ConfigPath string
}

// DefaultPaths returns the default config paths for a project root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigDir:  filepath.Join(root, Dir),
		ConfigPath: filepath.Join(root, Dir, "config.toml"),
	}
}
