package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sqltool/internal/command"
	"github.com/conn-castle/sqltool/internal/messages"
)

func newCommandCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CommandUse,
		Short: messages.CommandShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			assembler := &command.Assembler{
				Settings: s.cfg,
				Resolver: s.manager,
				Status:   s.status,
				Logger:   &s.logger,
			}
			spec, err := assembler.Build(cmd.Context(), s.worktree, flags.toolID)
			if err != nil {
				return reportedFailure(flags, err)
			}
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(spec); err != nil {
				return fmt.Errorf(messages.CommandEncodeFmt, err)
			}
			return nil
		},
	}
}

// reportedFailure turns an error the status printer already rendered into a silent exit.
// With --quiet nothing was rendered, so the error is returned for runMain to print.
func reportedFailure(flags *globalFlags, err error) error {
	if flags.quiet {
		return err
	}
	return &SilentExitError{Code: 1}
}
