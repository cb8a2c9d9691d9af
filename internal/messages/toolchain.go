package messages

// Version messages.
const (
	// VersionRequired indicates an empty version string.
	VersionRequired   = "version is required"
	VersionInvalidFmt = "version %q is not a semantic version"
)

// Release query messages.
const (
	// ReleaseErrRepoNotFound is the sentinel text for a missing repository.
	ReleaseErrRepoNotFound     = "repository not found"
	ReleaseErrNoMatch          = "no matching release"
	ReleaseSourceRequired      = "release source is required"
	ReleaseInvalidRepoFmt      = "invalid repository %q: expected owner/name"
	ReleaseCreateRequestErrFmt = "create releases request: %w"
	ReleaseFetchErrFmt         = "fetch releases for %s: %w"
	ReleaseFetchStatusFmt      = "fetch releases for %s: unexpected status %s"
	ReleaseRepoNotFoundFmt     = "%w: %s"
	ReleaseDecodeErrFmt        = "decode releases for %s: %w"
	ReleaseMissingTagFmt       = "latest release of %s missing tag_name"
	ReleaseNoMatchFmt          = "%w for %s (pre-release %t, require assets %t)"
)

// Toolchain messages.
const (
	// ToolchainErrNotFound is the sentinel text for a cache and PATH miss.
	ToolchainErrNotFound        = "executable not found"
	ToolchainErrReleaseLookup   = "release lookup failed"
	ToolchainErrAcquisition     = "acquisition failed"
	ToolchainErrPermission      = "could not mark binary executable"
	ToolchainErrNetworkDisabled = "network access disabled"

	// ToolchainSystemRequired indicates a nil System.
	ToolchainSystemRequired                = "toolchain system is required"
	ToolchainVersionRequired               = "install version is required"
	ToolchainInvalidVersionFmt             = "invalid install version %q"
	ToolchainNotFoundFmt                   = "%w: %s"
	ToolchainReleaseLookupFmt              = "%w: %s: %w"
	ToolchainNotInstalledOfflineFmt        = "%w: no %s version is installed under %s"
	ToolchainVersionNotInstalledOfflineFmt = "%w: version %s is not installed (expected at %s)"
	ToolchainCreateRootFmt                 = "create install root %s: %w"
	ToolchainRemovePartialFmt              = "remove partial install: %w"
	ToolchainAcquisitionFmt                = "git clone %s into %s failed"
	ToolchainAcquisitionExitFmt            = " (exit status %d)"
	ToolchainPermissionFmt                 = "mark %s executable: %v"

	// ToolchainLocated is logged when the cache or PATH provides the executable.
	ToolchainLocated           = "executable located"
	ToolchainLatestRelease     = "latest release resolved"
	ToolchainAlreadyInstalled  = "version already installed"
	ToolchainRemovingPartial   = "removing partial install"
	ToolchainCloning           = "cloning source repository"
	ToolchainPruned            = "pruned stale versions"
	ToolchainPruneListFailed   = "list install root failed; skipping cleanup"
	ToolchainPruneRemoveFailed = "remove stale version failed; continuing"
	ToolchainPruneRemoved      = "removed stale version"
)

// Installation status output.
const (
	// StatusCheckingFmt is printed when the release index is queried.
	StatusCheckingFmt    = "Checking for %s updates...\n"
	StatusDownloadingFmt = "Downloading %s %s...\n"
	StatusFailedFmt      = "%s installation failed: %s\n"
)
