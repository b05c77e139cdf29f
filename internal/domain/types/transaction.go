package types

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidText is returned for identifiers that are not valid UTF-8.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// PurchaseTransaction is a purchase event received from the provider that has
// not been acknowledged yet.
type PurchaseTransaction struct {
	Result        int
	SKU           string
	ProductType   ProductType
	TransactionID string
	PurchaseToken string
}

// Matches reports whether the transaction carries the given SKU and id.
func (t PurchaseTransaction) Matches(sku, transactionID string) bool {
	return t.SKU == sku && t.TransactionID == transactionID
}

// Validate reports whether t can be persisted: a known product type and
// UTF-8 text fields.
func (t PurchaseTransaction) Validate() error {
	if !t.ProductType.Valid() {
		return &UnknownVariantError{Enum: "ProductType", Token: t.ProductType.String()}
	}
	for _, s := range []string{t.SKU, t.TransactionID, t.PurchaseToken} {
		if !utf8.ValidString(s) {
			return ErrInvalidText
		}
	}
	return nil
}

// ValidateSKU rejects SKUs that cannot round-trip through the persisted form.
func ValidateSKU(sku string) error {
	if !utf8.ValidString(sku) {
		return ErrInvalidText
	}
	return nil
}
