package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/config"
	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/release"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			installed, ok := s.manager.NewestInstalled()
			if ok {
				_, _ = fmt.Fprintf(out, messages.StatusInstalledFmt, installed)
			} else {
				_, _ = fmt.Fprint(out, messages.StatusNotInstalled)
			}
			if s.noNetwork {
				_, _ = fmt.Fprintf(out, messages.StatusSkippedNoNetFmt, config.EnvNoNetwork)
				return nil
			}

			result, err := s.manager.CheckForUpdate(cmd.Context())
			switch {
			case err != nil && release.IsRateLimitError(err):
				_, _ = fmt.Fprint(out, messages.StatusRateLimited)
				return nil
			case err != nil:
				_, _ = fmt.Fprintf(out, messages.StatusCheckFailedFmt, err)
				return nil
			}
			_, _ = fmt.Fprintf(out, messages.StatusLatestFmt, result.Latest)
			switch {
			case !result.Outdated:
				_, _ = fmt.Fprint(out, messages.StatusUpToDate)
			case ok:
				_, _ = color.New(color.FgYellow).Fprintf(out, messages.StatusOutdatedFmt, result.Latest, installed)
			}
			return nil
		},
	}
}
