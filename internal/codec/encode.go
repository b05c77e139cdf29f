package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"iapstore/internal/domain"
)

type document struct {
	Offset   string        `json:"PurchaseUpdateOffset"`
	Entitled []entitlement `json:"EntitledSKUs"`
	Pending  []transaction `json:"PendingPuchaseTransactions"`
}

type entitlement struct {
	SKU string `json:"SKU"`
}

type transaction struct {
	Result        int    `json:"Result"`
	SKU           string `json:"SKU"`
	ProductType   string `json:"ProductType"`
	TransactionID string `json:"TransactionID"`
	PurchaseToken string `json:"PurchaseToken"`
}

// Encode renders state as its canonical plaintext document. Text that is not
// valid UTF-8 is an error rather than being replaced.
func Encode(state domain.State) ([]byte, error) {
	if _, err := domain.ParseOffset(state.UpdateOffset.String()); err != nil {
		return nil, fmt.Errorf("encode offset: %w", err)
	}
	doc := document{
		Offset:   state.UpdateOffset.String(),
		Entitled: make([]entitlement, 0, len(state.EntitledSKUs)),
		Pending:  make([]transaction, 0, len(state.Pending)),
	}
	for _, sku := range state.SortedSKUs() {
		if err := domain.ValidateSKU(sku); err != nil {
			return nil, fmt.Errorf("encode entitled SKU %q: %w", sku, err)
		}
		doc.Entitled = append(doc.Entitled, entitlement{SKU: sku})
	}
	for i, tx := range state.Pending {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("encode pending[%d]: %w", i, err)
		}
		doc.Pending = append(doc.Pending, transaction{
			Result:        tx.Result,
			SKU:           tx.SKU,
			ProductType:   tx.ProductType.String(),
			TransactionID: tx.TransactionID,
			PurchaseToken: tx.PurchaseToken,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
