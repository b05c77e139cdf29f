package types

import "sort"

// State is a full snapshot of the purchase cache.
type State struct {
	UpdateOffset Offset
	EntitledSKUs map[string]struct{}
	Pending      []PurchaseTransaction
}

// NewState returns the default state: beginning offset, nothing entitled,
// nothing pending.
func NewState() State {
	return State{
		UpdateOffset: OffsetBeginning,
		EntitledSKUs: make(map[string]struct{}),
	}
}

// SortedSKUs returns the entitled SKUs in ascending order.
func (s State) SortedSKUs() []string {
	out := make([]string, 0, len(s.EntitledSKUs))
	for sku := range s.EntitledSKUs {
		out = append(out, sku)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := State{
		UpdateOffset: s.UpdateOffset,
		EntitledSKUs: make(map[string]struct{}, len(s.EntitledSKUs)),
	}
	for sku := range s.EntitledSKUs {
		c.EntitledSKUs[sku] = struct{}{}
	}
	if len(s.Pending) > 0 {
		c.Pending = append([]PurchaseTransaction(nil), s.Pending...)
	}
	return c
}
