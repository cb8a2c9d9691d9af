package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/conn-castle/sqltool/internal/config"
	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/release"
	"github.com/conn-castle/sqltool/internal/root"
	"github.com/conn-castle/sqltool/internal/status"
	"github.com/conn-castle/sqltool/internal/terminal"
	"github.com/conn-castle/sqltool/internal/toolchain"
	"github.com/conn-castle/sqltool/internal/worktree"
)

// Process seams, swapped by tests.
var (
	getenv       = os.Getenv
	environ      = os.Environ
	userCacheDir = os.UserCacheDir
)

// session holds everything one invocation resolves from the working directory, the project
// config, and the environment.
type session struct {
	projectRoot string
	cfg         *config.Config
	manager     *toolchain.Manager
	worktree    *worktree.Local
	status      toolchain.StatusReporter
	logger      zerolog.Logger
	noNetwork   bool
}

func newSession(flags *globalFlags, stderr io.Writer) (*session, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf(messages.RootGetwdFmt, err)
	}
	projectRoot, err := root.FindProjectRoot(cwd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(config.DefaultPaths(projectRoot).ConfigPath)
	if err != nil {
		return nil, err
	}
	installDir, err := config.InstallDir(cfg, getenv, userCacheDir)
	if err != nil {
		return nil, err
	}

	logger := newLogger(flags, stderr)
	var reporter toolchain.StatusReporter = status.Discard{}
	if !flags.quiet {
		reporter = status.NewPrinter(stderr, terminal.IsTerminal(stderr))
	}
	git := toolchain.Git{Binary: cfg.Toolchain.GitPath, Depth: cfg.Toolchain.CloneDepth}
	if flags.debug {
		git.Progress = stderr
	}
	noNetwork := config.NoNetwork(getenv)

	manager := toolchain.New(toolchain.Options{
		Root:       installDir,
		Repo:       cfg.Toolchain.Repo,
		SourceURL:  cfg.Toolchain.SourceURL,
		Release:    release.Options{PreRelease: cfg.Toolchain.PreRelease},
		PruneScope: toolchain.PruneScope(cfg.Toolchain.GCScope),
		NoNetwork:  noNetwork,
		Releases:   release.GitHub{Token: config.GitHubToken(getenv)},
		Cloner:     git,
		Status:     reporter,
		Logger:     &logger,
	})
	return &session{
		projectRoot: projectRoot,
		cfg:         cfg,
		manager:     manager,
		worktree:    worktree.New(projectRoot, environ()),
		status:      reporter,
		logger:      logger,
		noNetwork:   noNetwork,
	}, nil
}

// newLogger returns the diagnostic logger: debug level with --debug, disabled with --quiet,
// errors only otherwise.
func newLogger(flags *globalFlags, stderr io.Writer) zerolog.Logger {
	if flags.quiet && !flags.debug {
		return zerolog.Nop()
	}
	level := zerolog.ErrorLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: stderr, NoColor: !terminal.IsTerminal(stderr), PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(out).Level(level)
}
