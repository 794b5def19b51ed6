package ledger

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// SetCurrency changes the display currency code. Amounts are not
// converted; the code only drives formatting.
func (s *Service) SetCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return common.NewUserError(
			fmt.Sprintf("%q is not a 3-letter currency code", code), common.ErrInvalidConfig)
	}
	return s.store.Update(func(doc *model.AppData) error {
		doc.Settings.Currency = code
		return nil
	})
}

// SetPrivacyMode toggles masking of monetary figures in all output.
func (s *Service) SetPrivacyMode(enabled bool) error {
	return s.store.Update(func(doc *model.AppData) error {
		doc.Settings.PrivacyMode = enabled
		return nil
	})
}

// SetProfileName updates the display name.
func (s *Service) SetProfileName(name string) error {
	return s.store.Update(func(doc *model.AppData) error {
		doc.Profile.Name = name
		return nil
	})
}
