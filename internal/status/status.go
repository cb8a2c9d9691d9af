// Package status renders installation state transitions for the user.
package status

import (
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

// Printer writes one line per installation state transition.
type Printer struct {
	Out io.Writer
	// Color enables ANSI colors; callers set it from terminal detection.
	Color bool
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	return &Printer{Out: out, Color: useColor}
}

// SetInstallationStatus implements toolchain.StatusReporter.
func (p *Printer) SetInstallationStatus(toolID string, s toolchain.InstallationStatus, detail string) {
	if p == nil || p.Out == nil {
		return
	}
	switch s {
	case toolchain.StatusCheckingForUpdate:
		_, _ = p.paint(color.FgCyan).Fprintf(p.Out, messages.StatusCheckingFmt, toolID)
	case toolchain.StatusDownloading:
		_, _ = p.paint(color.FgCyan).Fprintf(p.Out, messages.StatusDownloadingFmt, toolID, detail)
	case toolchain.StatusFailed:
		_, _ = p.paint(color.FgRed).Fprintf(p.Out, messages.StatusFailedFmt, toolID, detail)
	}
}

func (p *Printer) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Discard drops every transition.
type Discard struct{}

// SetInstallationStatus implements toolchain.StatusReporter.
func (Discard) SetInstallationStatus(string, toolchain.InstallationStatus, string) {}
