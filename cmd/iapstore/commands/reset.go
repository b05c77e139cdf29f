package commands

import "github.com/spf13/cobra"

// resetCmd removes the persisted cache; the next run starts from defaults.
func resetCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the persisted cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.wire.Vault.Remove()
		},
	}
}
