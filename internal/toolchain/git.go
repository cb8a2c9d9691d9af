package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Cloner materializes the upstream source repository into a directory.
type Cloner interface {
	Clone(ctx context.Context, url string, dest string) error
}

var execCommandContext = exec.CommandContext

// Git clones with the git command line client.
type Git struct {
	// Binary is the git executable; "git" when empty.
	Binary string
	// Depth requests a shallow clone when positive.
	Depth int
	// Progress, when set, also receives git's stderr output.
	Progress io.Writer
}

// Clone runs `git clone <url> <dest>`. Failures are returned as *AcquisitionError carrying the
// exit status and captured stderr.
func (g Git) Clone(ctx context.Context, url string, dest string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	bin := strings.TrimSpace(g.Binary)
	if bin == "" {
		bin = "git"
	}
	args := []string{"clone"}
	if g.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(g.Depth))
	}
	args = append(args, "--", url, dest)

	var stderr bytes.Buffer
	cmd := execCommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	if g.Progress != nil {
		cmd.Stderr = io.MultiWriter(&stderr, g.Progress)
	}
	err := cmd.Run()
	if err == nil {
		return nil
	}

	acqErr := &AcquisitionError{
		URL:      url,
		Dir:      dest,
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr.String()),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		acqErr.ExitCode = exitErr.ExitCode()
	}
	return acqErr
}
