package domain

import (
	interfaces "iapstore/internal/domain/interfaces"
	types "iapstore/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Offset              = types.Offset
	ProductType         = types.ProductType
	PurchaseTransaction = types.PurchaseTransaction
	State               = types.State
	UnknownVariantError = types.UnknownVariantError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Storage   = interfaces.Storage
	Persister = interfaces.Persister
	Cipher    = interfaces.Cipher
)

const (
	OffsetBeginning     = types.OffsetBeginning
	ProductConsumable   = types.ProductConsumable
	ProductEntitled     = types.ProductEntitled
	ProductSubscription = types.ProductSubscription
)

var (
	ErrInvalidOffset = types.ErrInvalidOffset
	ErrInvalidText   = types.ErrInvalidText
	ProductTypes     = types.ProductTypes
	NewState         = types.NewState
	ParseOffset      = types.ParseOffset
	ParseProductType = types.ParseProductType
	ValidateSKU      = types.ValidateSKU
)
