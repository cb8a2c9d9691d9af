package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

func newInstallCmd(flags *globalFlags) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			path, err := s.manager.Install(cmd.Context(), flags.toolID, version)
			if err != nil {
				s.status.SetInstallationStatus(flags.toolID, toolchain.StatusFailed, err.Error())
				return reportedFailure(flags, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InstallDoneFmt, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "", messages.InstallFlagVersion)
	return cmd
}
