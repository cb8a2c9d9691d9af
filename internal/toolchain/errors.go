package toolchain

import (
	"errors"
	"fmt"

	"github.com/conn-castle/sqltool/internal/messages"
)

// Error kinds surfaced by resolution. Typed errors below match them with errors.Is.
var (
	// ErrNotFound reports a cache and PATH miss. It is not fatal: it drives installation.
	ErrNotFound = errors.New(messages.ToolchainErrNotFound)
	// ErrReleaseLookup reports that the upstream release query failed.
	ErrReleaseLookup = errors.New(messages.ToolchainErrReleaseLookup)
	// ErrAcquisition reports that the clone subprocess could not be spawned or failed.
	ErrAcquisition = errors.New(messages.ToolchainErrAcquisition)
	// ErrPermission reports that the installed binary could not be marked executable.
	ErrPermission = errors.New(messages.ToolchainErrPermission)
	// ErrNetworkDisabled reports that an install was needed while network access is disabled.
	ErrNetworkDisabled = errors.New(messages.ToolchainErrNetworkDisabled)
)

// AcquisitionError describes a failed clone of the upstream repository.
// ExitCode is -1 when the process never ran to completion.
type AcquisitionError struct {
	URL      string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *AcquisitionError) Error() string {
	msg := fmt.Sprintf(messages.ToolchainAcquisitionFmt, e.URL, e.Dir)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(messages.ToolchainAcquisitionExitFmt, e.ExitCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// Is matches ErrAcquisition.
func (e *AcquisitionError) Is(target error) bool { return target == ErrAcquisition }

// PermissionError describes a failure to mark the installed binary executable.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf(messages.ToolchainPermissionFmt, e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// Is matches ErrPermission.
func (e *PermissionError) Is(target error) bool { return target == ErrPermission }
