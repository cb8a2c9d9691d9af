// Package command assembles the launch command for the SQL checker.
package command

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

// LaunchSpec is what the host executes. It is built fresh for every request.
type LaunchSpec struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// Override is a user-configured binary. An empty Path leaves resolution to the toolchain;
// nil Arguments means none were configured.
type Override struct {
	Path      string
	Arguments []string
}

// Settings supplies per-tool binary overrides.
type Settings interface {
	BinaryOverride(toolID string, wt toolchain.Worktree) (Override, bool, error)
}

// Resolver returns a runnable executable path, installing one if needed.
type Resolver interface {
	ExecutablePath(ctx context.Context, toolID string, wt toolchain.Worktree) (string, error)
}

// Assembler builds LaunchSpecs from settings and the toolchain manager.
type Assembler struct {
	// Settings is optional; nil means no overrides.
	Settings Settings
	Resolver Resolver
	// Status receives StatusFailed when resolution fails; optional.
	Status toolchain.StatusReporter
	Logger *zerolog.Logger
}

// Build returns the launch command for toolID. A configured override path is used verbatim
// and the resolver is never consulted. Otherwise the resolver supplies the path. Configured
// arguments apply in both cases. The environment is always empty.
func (a *Assembler) Build(ctx context.Context, wt toolchain.Worktree, toolID string) (LaunchSpec, error) {
	if a.Resolver == nil {
		return LaunchSpec{}, fmt.Errorf(messages.AssemblerResolverRequired)
	}
	log := zerolog.Nop()
	if a.Logger != nil {
		log = *a.Logger
	}

	override, ok := a.override(toolID, wt, log)
	args := []string{}
	if ok && override.Arguments != nil {
		args = append(args, override.Arguments...)
	}
	if ok && override.Path != "" {
		log.Debug().Str("tool", toolID).Str("path", override.Path).Msg(messages.AssemblerUsingOverride)
		return LaunchSpec{Command: override.Path, Args: args, Env: map[string]string{}}, nil
	}

	path, err := a.Resolver.ExecutablePath(ctx, toolID, wt)
	if err != nil {
		if a.Status != nil {
			a.Status.SetInstallationStatus(toolID, toolchain.StatusFailed, err.Error())
		}
		return LaunchSpec{}, err
	}
	log.Debug().Str("tool", toolID).Str("command", path).Strs("args", args).Msg(messages.AssemblerResolved)
	return LaunchSpec{Command: path, Args: args, Env: map[string]string{}}, nil
}

// override consults Settings. Lookup errors are logged and treated as no override.
func (a *Assembler) override(toolID string, wt toolchain.Worktree, log zerolog.Logger) (Override, bool) {
	if a.Settings == nil {
		return Override{}, false
	}
	o, ok, err := a.Settings.BinaryOverride(toolID, wt)
	if err != nil {
		log.Warn().Err(err).Str("tool", toolID).Msg(messages.AssemblerOverrideLookupError)
		return Override{}, false
	}
	return o, ok
}
