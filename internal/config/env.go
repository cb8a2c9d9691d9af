package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/sqltool/internal/messages"
)

// Environment keys read by sqltool.
const (
	EnvInstallDir  = "SQLTOOL_INSTALL_DIR"
	EnvNoNetwork   = "SQLTOOL_NO_NETWORK"
	EnvGitHubToken = "SQLTOOL_GITHUB_TOKEN"
)

// InstallDir resolves the toolchain install root: SQLTOOL_INSTALL_DIR, then
// toolchain.install_dir, then <user cache dir>/sqltool.
func InstallDir(cfg *Config, getenv func(string) string, userCacheDir func() (string, error)) (string, error) {
	dir := strings.TrimSpace(getenv(EnvInstallDir))
	if dir == "" && cfg != nil {
		dir = strings.TrimSpace(cfg.Toolchain.InstallDir)
	}
	if dir != "" {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return "", fmt.Errorf(messages.ConfigExpandPathFmt, dir, err)
		}
		return expanded, nil
	}
	base, err := userCacheDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveCacheDirFmt, err)
	}
	return filepath.Join(base, "sqltool"), nil
}

// NoNetwork reports whether SQLTOOL_NO_NETWORK disables release queries and clones.
func NoNetwork(getenv func(string) string) bool {
	return strings.TrimSpace(getenv(EnvNoNetwork)) != ""
}

// GitHubToken returns the token sent with release queries, if any.
func GitHubToken(getenv func(string) string) string {
	return strings.TrimSpace(getenv(EnvGitHubToken))
}
