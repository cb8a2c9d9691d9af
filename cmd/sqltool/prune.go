package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

func newPruneCmd(flags *globalFlags) *cobra.Command {
	var keep string
	cmd := &cobra.Command{
		Use:   messages.PruneUse,
		Short: messages.PruneShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if keep == "" {
				newest, ok := s.manager.NewestInstalled()
				if !ok {
					return errors.New(messages.PruneNothingToKeep)
				}
				keep = toolchain.VersionDirName(s.manager.ToolName(), newest)
			}

			report := s.manager.Prune(keep)
			out := cmd.OutOrStdout()
			for _, name := range report.Removed {
				_, _ = fmt.Fprintf(out, messages.PruneRemovedFmt, name)
			}
			if flags.quiet {
				return nil
			}
			warnColor := color.New(color.FgYellow)
			for _, failure := range report.Failed {
				_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), messages.PruneFailedFmt, failure.Name, failure.Err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keep, "keep", "", messages.PruneFlagKeep)
	return cmd
}
