package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
)

// dataPath resolves the document location from flag, config, or default.
func dataPath() string {
	path := viper.GetString("data.path")
	if path == "" {
		return config.DefaultDataPath()
	}
	return config.ExpandPath(path)
}

func openStore() (storage.Store, error) {
	path := dataPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	return store, nil
}

func openService() (*ledger.Service, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return ledger.NewService(store), nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, common.NewUserError(
			fmt.Sprintf("%q is not a valid amount", raw), common.ErrInvalidAmount)
	}
	return amount, nil
}

// parseOptionalAmount reads an amount flag that may be absent.
func parseOptionalAmount(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// parseDay reads a YYYY-MM-DD date; an empty string means today.
func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, common.NewUserError(
			fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", raw), common.ErrInvalidConfig)
	}
	return day, nil
}

// parseMonth reads a YYYY-MM month; an empty string means the current month.
func parseMonth(raw string) (int, time.Month, error) {
	if raw == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	ts, err := time.ParseInLocation("2006-01", raw, time.Local)
	if err != nil {
		return 0, 0, common.NewUserError(
			fmt.Sprintf("%q is not a valid month, expected YYYY-MM", raw), common.ErrInvalidConfig)
	}
	return ts.Year(), ts.Month(), nil
}

// resolveWallet finds a wallet by name, or the currently selected wallet
// when name is empty.
func resolveWallet(doc model.AppData, name string) (model.Wallet, error) {
	if name == "" {
		if w := doc.WalletByID(doc.CurrentWalletID); w != nil {
			return *w, nil
		}
		return model.Wallet{}, common.NewUserError("no wallet selected", common.ErrInvalidWallet)
	}
	for _, w := range doc.Wallets {
		if w.Name == name {
			return w, nil
		}
	}
	return model.Wallet{}, common.NewUserError(
		fmt.Sprintf("wallet %q does not exist", name), common.ErrInvalidWallet)
}

func moneyFormatter(doc model.AppData) cli.MoneyFormatter {
	return cli.MoneyFormatter{
		Currency: doc.Settings.Currency,
		Privacy:  doc.Settings.PrivacyMode,
	}
}
