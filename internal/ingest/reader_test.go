package ingest

import (
	"testing"

	"github.com/SscSPs/restaurant_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadTable_CSVTrimsHeadersAndSkipsBlankLines(t *testing.T) {
	content := []byte(" Posted Date , Full description ,Amount\n01/02/2024,COFFEE,\"$1,200.00\"\n\n,,\n01/03/2024,RENT\n")

	table, err := ReadTable(content, "statement.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Posted Date", "Full description", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "$1,200.00", table.Rows[0].Value("Amount"))

	// short rows leave trailing columns null
	_, ok := table.Rows[1].Get("Amount")
	assert.False(t, ok)
	assert.Equal(t, "RENT", table.Rows[1].Value("Full description"))
}

func TestReadTable_StripsBOMAndReplacesInvalidBytes(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Status,Debit,Credit,Description\nCleared,5.00,,CAF\xffE\n")...)

	table, err := ReadTable(content, "citi.csv")
	require.NoError(t, err)

	assert.Equal(t, "Status", table.Headers[0])
	assert.True(t, table.HasColumn("Status"))
	assert.Equal(t, "CAF\uFFFDE", table.Rows[0].Value("Description"))
	assert.Equal(t, "5.00", table.Rows[0].Value("Debit"))
}

func TestReadTable_Empty(t *testing.T) {
	_, err := ReadTable([]byte(""), "empty.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}

func TestReadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"ProductNumber", "ProductDescription", "QtyShip", "ExtendedPrice"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"1001", "ONIONS", "2", "18.50"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := ReadTable(buf.Bytes(), "USF 03-04.XLSX")
	require.NoError(t, err)

	assert.True(t, table.HasColumn("ProductDescription"))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "ONIONS", table.Rows[0].Value("ProductDescription"))
	assert.Equal(t, "18.50", table.Rows[0].Value("ExtendedPrice"))
}

func TestReadTable_BadWorkbook(t *testing.T) {
	_, err := ReadTable([]byte("not a zip"), "broken.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrParse)
}
