package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

// Validate ensures the config is consistent.
func (c *Config) Validate(path string) error {
	switch toolchain.PruneScope(c.Toolchain.GCScope) {
	case "", toolchain.PruneVersions, toolchain.PruneAll:
	default:
		return fmt.Errorf(messages.ConfigInvalidGCScopeFmt, path, toolchain.PruneVersions, toolchain.PruneAll, c.Toolchain.GCScope)
	}
	if c.Toolchain.CloneDepth < 0 {
		return fmt.Errorf(messages.ConfigInvalidCloneDepthFmt, path, c.Toolchain.CloneDepth)
	}
	if repo := c.Toolchain.Repo; repo != "" {
		parts := strings.Split(repo, "/")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return fmt.Errorf(messages.ConfigInvalidRepoFmt, path, repo)
		}
	}

	tools := make([]string, 0, len(c.LSP))
	for id := range c.LSP {
		tools = append(tools, id)
	}
	sort.Strings(tools)
	for _, id := range tools {
		bin := c.LSP[id].Binary
		if bin == nil {
			continue
		}
		if bin.Path != nil && strings.TrimSpace(*bin.Path) == "" {
			return fmt.Errorf(messages.ConfigEmptyOverridePathFmt, path, id)
		}
	}
	return nil
}
