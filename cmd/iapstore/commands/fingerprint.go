package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the derived cache key fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", opts.wire.Vault.Fingerprint())
			return nil
		},
	}
}
