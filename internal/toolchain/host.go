package toolchain

// Worktree is the host's view of the project the checker runs for.
type Worktree interface {
	// Root returns the worktree root directory.
	Root() string
	// Which looks name up on the worktree's PATH.
	Which(name string) (string, bool)
}

// InstallationStatus is an installation state reported to the host for UI feedback.
type InstallationStatus int

// Installation states.
const (
	StatusNone InstallationStatus = iota
	StatusCheckingForUpdate
	StatusDownloading
	StatusFailed
)

func (s InstallationStatus) String() string {
	switch s {
	case StatusCheckingForUpdate:
		return "checking-for-update"
	case StatusDownloading:
		return "downloading"
	case StatusFailed:
		return "failed"
	default:
		return "none"
	}
}

// StatusReporter receives installation state transitions.
// detail carries the version being downloaded or the failure text.
type StatusReporter interface {
	SetInstallationStatus(toolID string, status InstallationStatus, detail string)
}

type discardStatus struct{}

func (discardStatus) SetInstallationStatus(string, InstallationStatus, string) {}
