package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"iapstore/internal/vault"
)

func inspectCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the decrypted cache document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := opts.wire.Vault.Plaintext()
			if errors.Is(err, vault.ErrNoState) {
				fmt.Fprintln(cmd.OutOrStdout(), "no persisted state")
				return nil
			}
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, pt, "", "  "); err != nil {
				return fmt.Errorf("cache plaintext is not JSON: %w", err)
			}
			out.WriteByte('\n')
			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
