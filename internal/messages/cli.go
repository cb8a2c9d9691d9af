package messages

// CLI messages.
const (
	// RootUse is the CLI command name.
	RootUse = "sqltool"
	// RootShort is the short description for the root command.
	RootShort       = "Resolve, install, and launch the sqleibniz SQL checker"
	RootVersionFlag = "Print version and exit"
	RootFlagQuiet   = "Suppress status and warning output"
	RootFlagDebug   = "Write diagnostic logs to stderr"
	RootFlagToolID  = "Tool identifier used for settings lookup and status reporting"
	RootGetwdFmt    = "resolve working directory: %w"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// CommandUse is the command subcommand name.
	CommandUse       = "command"
	CommandShort     = "Print the launch command for the SQL checker as JSON"
	CommandEncodeFmt = "encode launch command: %w"

	// WhichUse is the which subcommand name.
	WhichUse         = "which"
	WhichShort       = "Print an already available SQL checker executable without installing"
	WhichNotFoundFmt = "%s not found in cache or PATH"

	// InstallUse is the install subcommand name.
	InstallUse         = "install"
	InstallShort       = "Install the latest (or a specific) SQL checker release"
	InstallFlagVersion = "Release version to install instead of the latest"
	InstallDoneFmt     = "Installed %s\n"

	// PruneUse is the prune subcommand name.
	PruneUse           = "prune"
	PruneShort         = "Remove stale SQL checker version directories"
	PruneFlagKeep      = "Version directory to keep (defaults to the newest installed version)"
	PruneNothingToKeep = "no installed version found to keep; pass --keep"
	PruneRemovedFmt    = "Removed %s\n"
	PruneFailedFmt     = "Could not remove %s: %v\n"

	// StatusUse is the status subcommand name.
	StatusUse             = "status"
	StatusShort           = "Compare the installed SQL checker version with the latest release"
	StatusInstalledFmt    = "Installed: %s\n"
	StatusNotInstalled    = "Installed: none\n"
	StatusLatestFmt       = "Latest:    %s\n"
	StatusOutdatedFmt     = "Update available: %s (installed %s). Run `sqltool install` to update.\n"
	StatusUpToDate        = "Up to date.\n"
	StatusSkippedNoNetFmt = "Latest:    unknown (network disabled via %s)\n"
	StatusRateLimited     = "Latest:    unknown (GitHub API rate limit reached)\n"
	StatusCheckFailedFmt  = "Latest:    unknown (%v)\n"
)
