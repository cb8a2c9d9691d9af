package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/messages"
	"github.com/conn-castle/sqltool/internal/toolchain"
)

var getwd = os.Getwd

const (
	flagQuiet      = "quiet"
	flagQuietShort = "q"
	flagDebug      = "debug"
	flagTool       = "tool"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	quiet  bool
	debug  bool
	toolID string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().BoolVarP(&flags.quiet, flagQuiet, flagQuietShort, false, messages.RootFlagQuiet)
	cmd.PersistentFlags().BoolVar(&flags.debug, flagDebug, false, messages.RootFlagDebug)
	cmd.PersistentFlags().StringVar(&flags.toolID, flagTool, toolchain.DefaultToolName, messages.RootFlagToolID)

	cmd.AddCommand(
		newCommandCmd(flags),
		newWhichCmd(flags),
		newInstallCmd(flags),
		newPruneCmd(flags),
		newStatusCmd(flags),
	)
	return cmd
}
