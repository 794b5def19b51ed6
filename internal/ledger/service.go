// Package ledger implements the mutating operations over the stored
// document: transaction entry, transfers, wallets, debts, and the
// category registry. Reads for display go through internal/analytics.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
)

// Service wires the operations to a Store. The clock is injectable for
// tests; everything else reaches the document through store.Update so
// each operation persists synchronously.
type Service struct {
	store storage.Store
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a ledger service over the given store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Data exposes a read snapshot of the document.
func (s *Service) Data() model.AppData {
	return s.store.Data()
}

// entryTimestamp combines a user-picked calendar date with the current
// wall-clock time of day. Same-day entries keep their entry order while
// backdated entries still sort into the right day.
func (s *Service) entryTimestamp(day time.Time) time.Time {
	now := s.now()
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

// nextTransactionID mints a creation-ordered id. Unix milliseconds are
// monotonic enough for entry ordering; the bump past the current maximum
// keeps ids distinct when two entries land in the same millisecond.
func nextTransactionID(doc *model.AppData, now time.Time) int64 {
	id := now.UnixMilli()
	for _, t := range doc.Transactions {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return common.NewUserError("amount must be greater than zero", common.ErrInvalidAmount)
	}
	return nil
}

func requireWallet(doc *model.AppData, id uuid.UUID) (*model.Wallet, error) {
	w := doc.WalletByID(id)
	if w == nil {
		return nil, common.NewUserError(fmt.Sprintf("wallet %s does not exist", id), common.ErrInvalidWallet)
	}
	return w, nil
}
