package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// JSONStore implements Store on top of a single JSON file. Writes are
// atomic (temp file + rename) so an interrupted save never corrupts the
// document.
type JSONStore struct {
	doc  model.AppData
	path string
	mu   sync.Mutex
}

// Open loads the document at path, seeding a fresh default document when
// the file does not exist yet. Documents written by older versions are
// merged shallowly over the defaults, one top-level key at a time.
func Open(path string) (*JSONStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &JSONStore{path: path}

	raw, err := os.ReadFile(path) //nolint:gosec // path is user-configured
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.doc = DefaultDocument()
		if err := s.save(s.doc); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc, err := mergeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDocumentCorrupted, err)
	}
	s.doc = doc

	return s, nil
}

// mergeDocument unmarshals a persisted payload over a fresh default
// document. Present top-level keys replace the default wholesale; absent
// keys keep their defaults. The nested settings object merges key by key,
// so settings fields introduced after the payload was written appear with
// defaults rather than being absent.
func mergeDocument(raw []byte) (model.AppData, error) {
	defaults := DefaultDocument()

	// Array keys must be decoded into empty slices, not over the seed
	// records: json.Unmarshal fills array elements in place, so a partial
	// record would inherit fields from the seed record at the same index.
	// nil afterwards means the key was absent and keeps its default.
	doc := defaults
	doc.Wallets = nil
	doc.Transactions = nil
	doc.Debts = nil
	doc.Categories = nil

	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.AppData{}, err
	}

	if doc.Wallets == nil {
		doc.Wallets = defaults.Wallets
	}
	if doc.Categories == nil {
		doc.Categories = defaults.Categories
	}
	if doc.Debts == nil {
		doc.Debts = []model.Debt{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}
	if doc.Settings.BudgetLimits == nil {
		doc.Settings.BudgetLimits = map[string]decimal.Decimal{}
	}

	// Repair a stale wallet selection rather than failing the load.
	if doc.WalletByID(doc.CurrentWalletID) == nil && len(doc.Wallets) > 0 {
		doc.CurrentWalletID = doc.Wallets[0].ID
	}

	return doc, nil
}

// Data returns a snapshot copy of the document.
func (s *JSONStore) Data() model.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

// Update applies mutate to a copy of the document and persists it before
// swapping it in, so a failed mutation or save never leaves partial state
// visible.
func (s *JSONStore) Update(mutate func(*model.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneDocument(s.doc)
	if err := mutate(&next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.doc = next

	return nil
}

// Restore replaces the document with a backup payload. A malformed
// payload is rejected and the current document is left untouched.
func (s *JSONStore) Restore(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := mergeDocument(raw)
	if err != nil {
		return common.NewUserError("backup file is not valid JSON", err)
	}
	if err := s.save(doc); err != nil {
		return err
	}
	s.doc = doc

	return nil
}

// Path reports where the document lives on disk.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) save(doc model.AppData) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tally-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}

func cloneDocument(doc model.AppData) model.AppData {
	out := doc
	out.Wallets = append([]model.Wallet(nil), doc.Wallets...)
	out.Transactions = append([]model.Transaction(nil), doc.Transactions...)
	out.Debts = append([]model.Debt(nil), doc.Debts...)
	out.Categories = append([]model.CategoryItem(nil), doc.Categories...)

	for i, w := range out.Wallets {
		if w.TargetAmount != nil {
			target := *w.TargetAmount
			out.Wallets[i].TargetAmount = &target
		}
	}
	for i, d := range out.Debts {
		if d.DueDate != nil {
			due := *d.DueDate
			out.Debts[i].DueDate = &due
		}
	}

	out.Settings.BudgetLimits = make(map[string]decimal.Decimal, len(doc.Settings.BudgetLimits))
	for k, v := range doc.Settings.BudgetLimits {
		out.Settings.BudgetLimits[k] = v
	}

	return out
}
