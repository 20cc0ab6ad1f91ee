package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
)

func TestWriteAndReadRecords(t *testing.T) {
	records := []models.Base1Record{
		{
			Tarjeta:         "411111",
			Nombre:          "PEREZ JUAN",
			Operac:          "000100",
			RS:              "10",
			ImporteOriginal: "1250.50",
			Establecimiento: "TIENDA CENTRO",
		},
		{
			Tarjeta:         "422222",
			Nombre:          "GOMEZ ANA",
			Operac:          "000200",
			RS:              "20",
			ImporteOriginal: "-15.00",
		},
	}

	csvFile := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteRecordsToCSV(records, csvFile))

	rows, err := ReadCSVFile[models.Base1Record](csvFile)
	require.NoError(t, err)
	assert.Equal(t, records, rows)
}

func TestWriteRecordsHeaderOrder(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "headers.csv")
	require.NoError(t, WriteRecordsToCSV([]models.Base1Record{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	header := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])

	// Card context first, then the line-1 fields, then the line-2 fields.
	assert.True(t, strings.HasPrefix(header, "TARJETA,NOMBRE,OPERAC,RS,"), header)
	assert.True(t, strings.HasSuffix(header, ",TRNX,CAVV,POS.C.CODE"), header)
}

func TestWriteCSVFileNilRowsRejected(t *testing.T) {
	var rows []models.Base1Record
	err := WriteCSVFile(rows, filepath.Join(t.TempDir(), "nil.csv"))
	assert.Error(t, err)
}

func TestWriteCSVFileCreatesDirectory(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "deep", "nested", "out.csv")
	require.NoError(t, WriteCSVFile([]models.Base1Record{{Tarjeta: "1"}}, csvFile))
	assert.FileExists(t, csvFile)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile[models.Base1Record](filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFieldWithDelimiterIsQuoted(t *testing.T) {
	records := []models.Base1Record{
		{Tarjeta: "411111", Establecimiento: "TIENDA, LA GRANDE"},
	}

	csvFile := filepath.Join(t.TempDir(), "quoted.csv")
	require.NoError(t, WriteRecordsToCSV(records, csvFile))

	rows, err := ReadCSVFile[models.Base1Record](csvFile)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "TIENDA, LA GRANDE", rows[0].Establecimiento)
}
