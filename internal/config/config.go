// Package config loads sqltool settings from .sqltool/config.toml.
package config

// Config is the parsed .sqltool/config.toml.
type Config struct {
	Toolchain ToolchainConfig        `toml:"toolchain"`
	LSP       map[string]LSPSettings `toml:"lsp"`
}

// ToolchainConfig configures acquisition of the SQL checker.
type ToolchainConfig struct {
	// InstallDir holds version directories. "~" is expanded. Defaults to the user cache dir.
	InstallDir string `toml:"install_dir"`
	// Repo is the owner/name GitHub repository queried for releases.
	Repo string `toml:"repo"`
	// SourceURL is the git URL cloned into version directories.
	SourceURL string `toml:"source_url"`
	// GCScope is "versions" (default) or "all".
	GCScope    string `toml:"gc_scope"`
	PreRelease bool   `toml:"pre_release"`
	GitPath    string `toml:"git_path"`
	CloneDepth int    `toml:"clone_depth"`
}

// LSPSettings holds per-tool settings keyed by tool identifier.
type LSPSettings struct {
	Binary *BinarySettings `toml:"binary"`
}

// BinarySettings overrides the executable launched for a tool.
// A nil Path leaves resolution to the toolchain manager.
type BinarySettings struct {
	Path      *string  `toml:"path"`
	Arguments []string `toml:"arguments"`
}
