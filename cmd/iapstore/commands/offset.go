package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"iapstore/internal/domain"
)

func offsetCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Read or replace the purchase update offset",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current offset",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), opts.wire.Store.UpdateOffset())
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <token>",
			Short: "Replace the offset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				offset, err := domain.ParseOffset(args[0])
				if err != nil {
					return err
				}
				if err := opts.wire.Store.SetUpdateOffset(offset); err != nil {
					return err
				}
				return opts.persisted()
			},
		},
	)
	return cmd
}
