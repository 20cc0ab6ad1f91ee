package b1parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/parsererror"
)

// sampleReport is a minimal but structurally complete report: title banner,
// column rulers, a cardholder header and two record pairs.
func sampleReport() string {
	lines := []string{
		"************ BASE 1 PENDIENTES DE CONCILIAR ************",
		"--------------------------------------------------------",
		"--------------------------------------------------------",
		"- TARJETA 411111 LINEA NOMBRE PEREZ JUAN",
		dataLine1(2, "000100", "10", "000000001250.50"),
		dataLine2(2, "TERM00000001", "TIENDA CENTRO"),
		dataLine1(2, "000101", "20", " $2,000.00"),
		dataLine2(2, "TERM00000002", "TIENDA NORTE"),
	}
	return strings.Join(lines, "\n") + "\n"
}

func writeSample(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseReader(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleReport()))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "411111", records[0].Tarjeta)
	assert.Equal(t, "PEREZ JUAN", records[0].Nombre)
	assert.Equal(t, "1250.50", records[0].ImporteOriginal)
	assert.Equal(t, "2000.00", records[1].ImporteOriginal)
}

func TestParseReaderWithBOM(t *testing.T) {
	input := "\xEF\xBB\xBF" + sampleReport()
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var srcErr *parsererror.SourceError
	assert.True(t, errors.As(err, &srcErr))
}

func TestConvertToCSV(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir, "reporte.txt", sampleReport())
	output := filepath.Join(dir, "out.csv")

	require.NoError(t, ConvertToCSV(input, output))

	rows, err := common.ReadCSVFile[models.Base1Record](output)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "411111", rows[0].Tarjeta)
	assert.Equal(t, "000100", rows[0].Operac)
	assert.Equal(t, "TERM00000001", rows[0].Terminal)
}

func TestConvertToCSVEmptyReportWritesHeaders(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir, "vacio.txt", "sin datos\n")
	output := filepath.Join(dir, "out.csv")

	require.NoError(t, ConvertToCSV(input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Contains(t, header, "TARJETA")
	assert.Contains(t, header, "POS.C.CODE")
}

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()

	valid := writeSample(t, dir, "valid.txt", sampleReport())
	ok, err := ValidateFormat(valid)
	require.NoError(t, err)
	assert.True(t, ok)

	invalid := writeSample(t, dir, "invalid.txt", "some,other,csv\n1,2,3\n")
	ok, err = ValidateFormat(invalid)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBatchConvert(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "csv")

	writeSample(t, inputDir, "a.txt", sampleReport())
	writeSample(t, inputDir, "b.txt", sampleReport())
	writeSample(t, inputDir, "ignore.dat", "not a report")

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.FileExists(t, filepath.Join(outputDir, "a.csv"))
	assert.FileExists(t, filepath.Join(outputDir, "b.csv"))
}

func TestLastBusinessDay(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), LastBusinessDay(monday))

	sunday := monday.AddDate(0, 0, -1)
	assert.Equal(t, 28, LastBusinessDay(sunday).Day())

	saturday := monday.AddDate(0, 0, -2)
	assert.Equal(t, 28, LastBusinessDay(saturday).Day())

	wednesday := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, LastBusinessDay(wednesday).Day())
}

func TestOutputFileName(t *testing.T) {
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	name := OutputFileName(monday, "")
	assert.Equal(t, "BASE 1 PENDIENTES DE CONCILIAR LINEALIZADO (28-08-2026).csv", name)

	withDir := OutputFileName(monday, "out")
	assert.Equal(t, filepath.Join("out", name), withDir)
}
