package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func sampleTxns() []model.Transaction {
	date := time.Date(2026, 8, 15, 13, 45, 0, 0, time.Local)
	return []model.Transaction{
		{
			ID:       1,
			Date:     date,
			Type:     model.TypeExpense,
			Category: "Food",
			Amount:   decimal.NewFromFloat(12.5),
			Note:     "lunch #work",
		},
		{
			ID:       2,
			Date:     date,
			Type:     model.TypeIncome,
			Category: "Salary",
			Amount:   decimal.NewFromInt(1000),
			Note:     "",
		},
	}
}

func TestWriteCSVLegacyFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sampleTxns(), false))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Category,Amount,Note", lines[0])
	assert.Equal(t, "2026-08-15,expense,Food,12.50,lunch #work", lines[1])
	assert.Equal(t, "2026-08-15,income,Salary,1000.00,", lines[2])
}

func TestWriteCSVLegacyDoesNotQuoteCommas(t *testing.T) {
	txns := []model.Transaction{{
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
		Type:     model.TypeExpense,
		Category: "Food",
		Amount:   decimal.NewFromInt(5),
		Note:     "bread, milk",
	}}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, txns, false))

	// The legacy format leaves the comma bare; columns misalign and that
	// is the documented behavior.
	assert.Contains(t, sb.String(), "5.00,bread, milk")
	assert.NotContains(t, sb.String(), `"bread, milk"`)
}

func TestWriteCSVRFCQuoting(t *testing.T) {
	txns := []model.Transaction{{
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
		Type:     model.TypeExpense,
		Category: "Food",
		Amount:   decimal.NewFromInt(5),
		Note:     "bread, milk",
	}}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, txns, true))
	assert.Contains(t, sb.String(), `"bread, milk"`)
}

func TestFilterByTag(t *testing.T) {
	txns := sampleTxns()
	assert.Len(t, FilterByTag(txns, "work"), 1)
	assert.Len(t, FilterByTag(txns, ""), 2)
	assert.Empty(t, FilterByTag(txns, "vacation"))
}

func TestWriteBackupRoundTrips(t *testing.T) {
	doc := model.AppData{
		Transactions: sampleTxns(),
		Debts:        []model.Debt{},
	}

	var sb strings.Builder
	require.NoError(t, WriteBackup(&sb, doc))

	var restored model.AppData
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &restored))
	assert.Len(t, restored.Transactions, 2)
	assert.True(t, restored.Transactions[0].Amount.Equal(decimal.NewFromFloat(12.5)))
}
