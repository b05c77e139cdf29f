package datastore

import (
	"errors"
	"log/slog"

	"iapstore/internal/domain"
	"iapstore/internal/vault"
)

// DataStore is the write-through purchase state cache.
type DataStore struct {
	persister domain.Persister
	logger    *slog.Logger

	state      domain.State
	persistErr error
}

// New loads state through p. It never fails: if nothing usable is persisted
// the store starts from the default state and the reason is logged.
func New(p domain.Persister, logger *slog.Logger) *DataStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &DataStore{persister: p, logger: logger, state: domain.NewState()}
	s.load()
	return s
}

func (s *DataStore) load() {
	state, err := s.persister.Load()
	switch {
	case errors.Is(err, vault.ErrNoState):
		s.logger.Debug("no persisted purchase state, starting empty")
		return
	case err != nil:
		s.logger.Warn("failed to load purchase state, starting empty", "error", err)
		return
	}
	if state.EntitledSKUs == nil {
		state.EntitledSKUs = make(map[string]struct{})
	}
	s.state = state
	s.logger.Debug("loaded purchase state",
		"offset", state.UpdateOffset.String(),
		"entitled", len(state.EntitledSKUs),
		"pending", len(state.Pending),
	)
}

// persist writes the full state. Failures are logged and remembered; the
// in-memory state is kept either way.
func (s *DataStore) persist() {
	s.persistErr = s.persister.Save(s.state)
	if s.persistErr != nil {
		s.logger.Error("failed to persist purchase state", "error", s.persistErr)
	}
}

// UpdateOffset returns the current purchase update offset.
func (s *DataStore) UpdateOffset() domain.Offset {
	return s.state.UpdateOffset
}

// SetUpdateOffset replaces the offset and persists. Ordering is the
// caller's concern. An offset that cannot be persisted is rejected and the
// state is left unchanged; persist failures are reported by LastPersistError.
func (s *DataStore) SetUpdateOffset(offset domain.Offset) error {
	if _, err := domain.ParseOffset(offset.String()); err != nil {
		s.logger.Warn("rejected purchase update offset", "offset", offset.String(), "error", err)
		return err
	}
	s.state.UpdateOffset = offset
	s.persist()
	return nil
}

// AddEntitledSku adds sku to the entitled set. It persists and returns true
// only if the set changed. SKUs that are not valid UTF-8 are rejected.
func (s *DataStore) AddEntitledSku(sku string) (bool, error) {
	if err := domain.ValidateSKU(sku); err != nil {
		s.logger.Warn("rejected entitled SKU", "sku", sku, "error", err)
		return false, err
	}
	if _, ok := s.state.EntitledSKUs[sku]; ok {
		return false, nil
	}
	s.state.EntitledSKUs[sku] = struct{}{}
	s.persist()
	return true, nil
}

// IsEntitled reports whether sku is in the entitled set.
func (s *DataStore) IsEntitled(sku string) bool {
	_, ok := s.state.EntitledSKUs[sku]
	return ok
}

// RemoveEntitledSku removes sku when present and persists. It returns false
// without persisting when sku was not entitled.
func (s *DataStore) RemoveEntitledSku(sku string) bool {
	if _, ok := s.state.EntitledSKUs[sku]; !ok {
		return false
	}
	delete(s.state.EntitledSKUs, sku)
	s.persist()
	return true
}

// ClearEntitledSkus empties the entitled set and always persists, even when
// it was already empty.
func (s *DataStore) ClearEntitledSkus() {
	s.state.EntitledSKUs = make(map[string]struct{})
	s.persist()
}

// EntitledSkus returns the entitled SKUs in ascending order.
func (s *DataStore) EntitledSkus() []string {
	return s.state.SortedSKUs()
}

// AddPendingPurchaseTransaction appends tx to the pending queue and persists.
// Duplicates are kept. A transaction with an unknown product type or
// non-UTF-8 text is rejected without touching the queue.
func (s *DataStore) AddPendingPurchaseTransaction(tx domain.PurchaseTransaction) error {
	if err := tx.Validate(); err != nil {
		s.logger.Warn("rejected pending transaction",
			"sku", tx.SKU, "transaction", tx.TransactionID, "error", err)
		return err
	}
	s.state.Pending = append(s.state.Pending, tx)
	s.persist()
	return nil
}

// PendingPurchaseTransactions returns a copy of the pending queue in
// insertion order.
func (s *DataStore) PendingPurchaseTransactions() []domain.PurchaseTransaction {
	return append([]domain.PurchaseTransaction(nil), s.state.Pending...)
}

// RemovePendingPurchaseTransaction removes the first pending transaction
// matching sku and transactionID. It persists only when something was removed.
func (s *DataStore) RemovePendingPurchaseTransaction(sku, transactionID string) bool {
	for i, tx := range s.state.Pending {
		if !tx.Matches(sku, transactionID) {
			continue
		}
		s.state.Pending = append(s.state.Pending[:i:i], s.state.Pending[i+1:]...)
		s.persist()
		return true
	}
	return false
}

// Snapshot returns a deep copy of the whole state.
func (s *DataStore) Snapshot() domain.State {
	return s.state.Clone()
}

// Flush persists the current state and returns the outcome.
func (s *DataStore) Flush() error {
	s.persist()
	return s.persistErr
}

// LastPersistError returns the error from the most recent persist attempt,
// or nil if it succeeded or none has been made.
func (s *DataStore) LastPersistError() error {
	return s.persistErr
}
