package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func entitleCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entitle",
		Short: "Manage entitled SKUs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <sku>",
			Short: "Entitle a SKU",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				added, err := opts.wire.Store.AddEntitledSku(args[0])
				if err != nil {
					return err
				}
				if !added {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already entitled\n", args[0])
					return nil
				}
				return opts.persisted()
			},
		},
		&cobra.Command{
			Use:   "remove <sku>",
			Short: "Remove an entitlement",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !opts.wire.Store.RemoveEntitledSku(args[0]) {
					return fmt.Errorf("%s is not entitled", args[0])
				}
				return opts.persisted()
			},
		},
		&cobra.Command{
			Use:   "check <sku>",
			Short: "Report whether a SKU is entitled",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), opts.wire.Store.IsEntitled(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List entitled SKUs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, sku := range opts.wire.Store.EntitledSkus() {
					fmt.Fprintln(cmd.OutOrStdout(), sku)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every entitlement",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				opts.wire.Store.ClearEntitledSkus()
				return opts.persisted()
			},
		},
	)
	return cmd
}
