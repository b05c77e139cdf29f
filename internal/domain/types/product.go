package types

import "fmt"

// ProductType is the closed set of purchasable product kinds.
type ProductType int

const (
	ProductConsumable ProductType = iota + 1
	ProductEntitled
	ProductSubscription
)

// ProductTypes lists every valid product type in declaration order.
var ProductTypes = []ProductType{ProductConsumable, ProductEntitled, ProductSubscription}

// String returns the persisted token for the product type.
func (p ProductType) String() string {
	switch p {
	case ProductConsumable:
		return "CONSUMABLE"
	case ProductEntitled:
		return "ENTITLED"
	case ProductSubscription:
		return "SUBSCRIPTION"
	default:
		return fmt.Sprintf("ProductType(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared variants.
func (p ProductType) Valid() bool {
	switch p {
	case ProductConsumable, ProductEntitled, ProductSubscription:
		return true
	}
	return false
}

// UnknownVariantError reports a token that names no variant of an enum.
type UnknownVariantError struct {
	Enum  string
	Token string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Enum, e.Token)
}

// ParseProductType maps a persisted token to its ProductType.
func ParseProductType(s string) (ProductType, error) {
	switch s {
	case "CONSUMABLE":
		return ProductConsumable, nil
	case "ENTITLED":
		return ProductEntitled, nil
	case "SUBSCRIPTION":
		return ProductSubscription, nil
	}
	return 0, &UnknownVariantError{Enum: "ProductType", Token: s}
}
