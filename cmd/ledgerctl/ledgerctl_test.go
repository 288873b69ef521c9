package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetectCommand(t *testing.T) {
	bank := writeFile(t, "truist.csv", "Posted Date,Transaction Date,Full description,Amount\n01/03/2024,01/02/2024,RENT,-900\n")
	card := writeFile(t, "citi.csv", "Status,Date,Description,Debit,Credit\nCleared,03/01/2024,COSTCO,10,\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"detect", bank, card})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"truist.csv: Truist bank statement (tab ledger, 1 rows)\n"+
			"citi.csv: Citi credit card statement (tab credit_card, 1 rows)\n",
		out.String())
}

func TestDetectCommand_UnknownFormat(t *testing.T) {
	path := writeFile(t, "notes.csv", "Foo,Bar\n1,2\n")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"detect", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes.csv")
}

func TestImportCommand_RejectsBadTabBeforeConnecting(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "--tab", "payroll", "whatever.csv"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tab")
}

func TestWriteSummary(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true
	t.Cleanup(func() { decimal.MarshalJSONWithoutQuotes = false })

	s := dto.ToDashboardSummaryResponse(&domain.DashboardSummary{
		TotalRevenue: decimal.NewFromInt(100),
		TotalExpense: decimal.RequireFromString("30.5"),
		NetProfit:    decimal.RequireFromString("69.5"),
		CurrentCash:  decimal.NewFromInt(25),
	})

	var jsonOut bytes.Buffer
	require.NoError(t, writeSummary(&jsonOut, s, "json"))
	assert.Contains(t, jsonOut.String(), `"totalExpense": 30.5`)
	assert.Contains(t, jsonOut.String(), `"balance": 25`)

	var yamlOut bytes.Buffer
	require.NoError(t, writeSummary(&yamlOut, s, "yaml"))
	assert.Contains(t, yamlOut.String(), "totalRevenue: 100\n")
	assert.Contains(t, yamlOut.String(), "salesBreakdown:\n  cash: 0\n")

	assert.Error(t, writeSummary(&bytes.Buffer{}, s, "xml"))
}
