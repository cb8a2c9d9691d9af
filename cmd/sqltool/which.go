package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

func newWhichCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.WhichUse,
		Short: messages.WhichShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			path, err := s.manager.Locate(s.worktree)
			if err != nil {
				if !errors.Is(err, toolchain.ErrNotFound) {
					return err
				}
				// The install root outlives the in-process cache.
				newest, ok := s.manager.NewestInstalled()
				if !ok {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.WhichNotFoundFmt+"\n", s.manager.BinaryName())
					return &SilentExitError{Code: 1}
				}
				path = s.manager.VersionPath(newest)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
