package concil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/parsererror"
)

func writePile(t *testing.T, folder, name string, rows []PileRow) {
	t.Helper()
	require.NoError(t, common.WriteCSVFile(rows, filepath.Join(folder, name)))
}

func defaultOptions(folder string) Options {
	return Options{
		Folder:        folder,
		DebtPattern:   "M2D-RECU*.csv",
		CreditPattern: "M6D-DEV*.csv",
	}
}

func TestRunMatchesAcrossFiles(t *testing.T) {
	folder := t.TempDir()
	writePile(t, folder, "M2D-RECU1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "100.00"},
		{Tarjeta: "411111", Operac: "000200", ImporteOriginal: "50.00"},
	})
	writePile(t, folder, "M2D-RECU2.csv", []PileRow{
		{Tarjeta: "422222", Operac: "000300", ImporteOriginal: "75.00"},
	})
	writePile(t, folder, "M6D-DEV1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "100.00"},
		{Tarjeta: "422222", Operac: "000300", ImporteOriginal: "75.00"},
		{Tarjeta: "499999", Operac: "999999", ImporteOriginal: "1.00"},
	})

	result, err := Run(defaultOptions(folder))
	require.NoError(t, err)

	// The credit in DEV1 clears debts in both RECU files, which a per-file
	// pairing would miss.
	require.Len(t, result.Matches, 2)
	require.Len(t, result.Subtotals, 2)
	assert.Equal(t, "M2D-RECU1.csv", result.Subtotals[0].OriginDebt)
	assert.Equal(t, 1, result.Subtotals[0].Matches)
	assert.Equal(t, "100.00", result.Subtotals[0].Amount)
	assert.Equal(t, "M2D-RECU2.csv", result.Subtotals[1].OriginDebt)
	assert.Equal(t, "75.00", result.Subtotals[1].Amount)
}

func TestRunDuplicateKeysPairCombinatorially(t *testing.T) {
	folder := t.TempDir()
	writePile(t, folder, "M2D-RECU1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
	})
	writePile(t, folder, "M6D-DEV1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
	})

	result, err := Run(defaultOptions(folder))
	require.NoError(t, err)

	// 2 debt rows x 2 credit rows with the same key: 4 pairings.
	assert.Len(t, result.Matches, 4)
	require.Len(t, result.Subtotals, 1)
	assert.Equal(t, 4, result.Subtotals[0].Matches)
	assert.Equal(t, "40.00", result.Subtotals[0].Amount)
}

func TestRunEmptyPileFails(t *testing.T) {
	folder := t.TempDir()
	writePile(t, folder, "M2D-RECU1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
	})

	_, err := Run(defaultOptions(folder))
	require.Error(t, err)

	var concilErr *parsererror.ConciliationError
	assert.True(t, errors.As(err, &concilErr))
}

func TestRunSkipsRowsWithoutKey(t *testing.T) {
	folder := t.TempDir()
	writePile(t, folder, "M2D-RECU1.csv", []PileRow{
		{Tarjeta: "", Operac: "000100", ImporteOriginal: "10.00"},
		{Tarjeta: "411111", Operac: "", ImporteOriginal: "10.00"},
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
	})
	writePile(t, folder, "M6D-DEV1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "10.00"},
	})

	result, err := Run(defaultOptions(folder))
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)
}

func TestWriteReports(t *testing.T) {
	folder := t.TempDir()
	writePile(t, folder, "M2D-RECU1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "100.00"},
	})
	writePile(t, folder, "M6D-DEV1.csv", []PileRow{
		{Tarjeta: "411111", Operac: "000100", ImporteOriginal: "100.00"},
	})

	result, err := Run(defaultOptions(folder))
	require.NoError(t, err)

	outDir := t.TempDir()
	matchFile := filepath.Join(outDir, "GLOBAL_CONCILIATION_REPORT.csv")
	breakdownFile := filepath.Join(outDir, "CONCILIATION_SUBTOTALS_REPORT.csv")
	require.NoError(t, result.WriteReports(matchFile, breakdownFile))

	matches, err := common.ReadCSVFile[Match](matchFile)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "M2D-RECU1.csv", matches[0].OriginDebt)
	assert.Equal(t, "M6D-DEV1.csv", matches[0].OriginCredit)

	data, err := os.ReadFile(breakdownFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUBTOTAL_AMOUNT")
}
