package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"iapstore/internal/domain"
)

func pendingCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Manage pending purchase transactions",
	}
	cmd.AddCommand(pendingAddCmd(opts), pendingListCmd(opts), pendingRemoveCmd(opts))
	return cmd
}

func pendingAddCmd(opts *RootOptions) *cobra.Command {
	var (
		tx          domain.PurchaseTransaction
		productType string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue a purchase transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := domain.ParseProductType(productType)
			if err != nil {
				return err
			}
			tx.ProductType = pt
			if tx.TransactionID == "" {
				tx.TransactionID = uuid.NewString()
			}
			if err := opts.wire.Store.AddPendingPurchaseTransaction(tx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tx.TransactionID)
			return opts.persisted()
		},
	}
	cmd.Flags().StringVar(&tx.SKU, "sku", "", "product SKU")
	cmd.Flags().StringVar(&productType, "type", domain.ProductEntitled.String(), "product type (CONSUMABLE|ENTITLED|SUBSCRIPTION)")
	cmd.Flags().StringVar(&tx.TransactionID, "tx", "", "transaction id (default: random UUID)")
	cmd.Flags().StringVar(&tx.PurchaseToken, "token", "", "purchase token")
	cmd.Flags().IntVar(&tx.Result, "result", 0, "provider result code")
	_ = cmd.MarkFlagRequired("sku")
	return cmd
}

func pendingListCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending transactions in queue order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SKU\tTYPE\tTRANSACTION\tRESULT\tTOKEN")
			for _, tx := range opts.wire.Store.PendingPurchaseTransactions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", tx.SKU, tx.ProductType, tx.TransactionID, tx.Result, tx.PurchaseToken)
			}
			return tw.Flush()
		},
	}
}

func pendingRemoveCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sku> <transaction-id>",
		Short: "Remove the first matching pending transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.wire.Store.RemovePendingPurchaseTransaction(args[0], args[1]) {
				return fmt.Errorf("no pending transaction %s for %s", args[1], args[0])
			}
			return opts.persisted()
		},
	}
}
