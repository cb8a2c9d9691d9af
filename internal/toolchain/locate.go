package toolchain

import (
	"fmt"

	"github.com/conn-castle/sqltool/internal/messages"
)

// Locate returns an executable that is ready to run without installing anything.
// A cached path wins when it still names a regular file; otherwise the worktree PATH is
// searched for binaryName. A miss returns ErrNotFound.
func Locate(sys System, cached string, binaryName string, wt Worktree) (string, error) {
	if sys == nil {
		return "", fmt.Errorf(messages.ToolchainSystemRequired)
	}
	if isRegularFile(sys, cached) {
		return cached, nil
	}
	if wt != nil {
		if path, ok := wt.Which(binaryName); ok && path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf(messages.ToolchainNotFoundFmt, ErrNotFound, binaryName)
}
