// Package receipt turns receipt images into draft transaction fields via
// an external vision model. Results are best-effort and partial: only the
// fields the model could read come back, and callers must leave form
// fields untouched when the corresponding result field is absent.
package receipt

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Partial is a best-effort extraction from one receipt image. Nil fields
// were not readable and must not overwrite anything.
type Partial struct {
	Amount   *decimal.Decimal
	Date     *time.Time
	Category *string
	Note     *string
}

// Empty reports whether nothing useful was extracted.
func (p Partial) Empty() bool {
	return p.Amount == nil && p.Date == nil && p.Category == nil && p.Note == nil
}

// Parser defines the interface for receipt extraction providers.
type Parser interface {
	Parse(ctx context.Context, image []byte, mediaType string) (Partial, error)
}

// Config holds provider settings.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}
