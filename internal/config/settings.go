package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/sqltool/internal/command"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

// BinaryOverride returns the [lsp.<toolID>.binary] settings. It reports false when the tool
// has no binary table. A leading "~" in the path is expanded; otherwise the path is used
// verbatim.
func (c *Config) BinaryOverride(toolID string, _ toolchain.Worktree) (command.Override, bool, error) {
	if c == nil {
		return command.Override{}, false, nil
	}
	settings, ok := c.LSP[toolID]
	if !ok || settings.Binary == nil {
		return command.Override{}, false, nil
	}
	var out command.Override
	if settings.Binary.Path != nil {
		path, err := homedir.Expand(strings.TrimSpace(*settings.Binary.Path))
		if err != nil {
			return command.Override{}, false, err
		}
		out.Path = path
	}
	if settings.Binary.Arguments != nil {
		out.Arguments = append([]string{}, settings.Binary.Arguments...)
	}
	return out, true, nil
}
