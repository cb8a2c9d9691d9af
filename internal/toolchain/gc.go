package toolchain

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conn-castle/sqltool/internal/messages"
)

// PruneScope selects which install root entries garbage collection may remove.
type PruneScope string

const (
	// PruneVersions removes only directories named <tool>-<version>.
	PruneVersions PruneScope = "versions"
	// PruneAll removes every entry of the install root except the kept one.
	PruneAll PruneScope = "all"
)

// PruneOptions configures Prune.
type PruneOptions struct {
	// Scope defaults to PruneVersions.
	Scope PruneScope
	// ToolName prefixes version directory names; DefaultToolName when empty.
	ToolName string
	Logger   *zerolog.Logger
}

// PruneFailure records an entry that could not be removed.
type PruneFailure struct {
	Name string
	Err  error
}

// PruneReport summarizes a Prune run.
type PruneReport struct {
	Kept    string
	Removed []string
	Failed  []PruneFailure
}

// Prune removes the immediate entries of root other than keep that fall inside opts.Scope.
// It is best effort: failures are logged and recorded in the report, never returned, so a
// locked or in-use directory cannot fail an otherwise successful installation.
// Kept entries are not inspected.
func Prune(sys System, root string, keep string, opts PruneOptions) PruneReport {
	log := loggerOrNop(opts.Logger)
	report := PruneReport{Kept: keep}
	if sys == nil {
		return report
	}
	entries, err := sys.ReadDir(root)
	if err != nil {
		log.Warn().Err(err).Str("root", root).Msg(messages.ToolchainPruneListFailed)
		report.Failed = append(report.Failed, PruneFailure{Name: root, Err: err})
		return report
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == keep || !inPruneScope(entry, opts) {
			continue
		}
		if err := removeBestEffort(sys, filepath.Join(root, name), log); err != nil {
			report.Failed = append(report.Failed, PruneFailure{Name: name, Err: err})
			continue
		}
		report.Removed = append(report.Removed, name)
	}
	return report
}

// removeBestEffort removes path, logging and swallowing any failure.
// The error is returned for reporting only; callers must not propagate it.
func removeBestEffort(sys System, path string, log zerolog.Logger) error {
	if err := sys.RemoveAll(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg(messages.ToolchainPruneRemoveFailed)
		return err
	}
	log.Debug().Str("path", path).Msg(messages.ToolchainPruneRemoved)
	return nil
}

func inPruneScope(entry fs.DirEntry, opts PruneOptions) bool {
	if opts.Scope == PruneAll {
		return true
	}
	tool := opts.ToolName
	if tool == "" {
		tool = DefaultToolName
	}
	return entry.IsDir() && strings.HasPrefix(entry.Name(), tool+"-")
}

func loggerOrNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}
