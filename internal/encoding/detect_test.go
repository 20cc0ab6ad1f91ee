package encoding

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	utf8r, err := NewUTF8Reader(r)
	require.NoError(t, err)
	data, err := io.ReadAll(utf8r)
	require.NoError(t, err)
	return string(data)
}

func TestPlainASCIIPassthrough(t *testing.T) {
	assert.Equal(t, "- TARJETA 123456\n", readAll(t, strings.NewReader("- TARJETA 123456\n")))
}

func TestUTF8BOMIsStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hola")...)
	assert.Equal(t, "hola", readAll(t, bytes.NewReader(input)))
}

func TestUTF16LEIsDecoded(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte("JOSÉ PÉREZ"))
	require.NoError(t, err)

	assert.Equal(t, "JOSÉ PÉREZ", readAll(t, bytes.NewReader(encoded)))
}

func TestUTF16BEIsDecoded(t *testing.T) {
	encoder := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte("hola"))
	require.NoError(t, err)

	assert.Equal(t, "hola", readAll(t, bytes.NewReader(encoded)))
}

func TestValidUTF8Passthrough(t *testing.T) {
	assert.Equal(t, "JOSÉ", readAll(t, strings.NewReader("JOSÉ")))
}

func TestWindows1252IsDecoded(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte("NIÑO CAFÉ"))
	require.NoError(t, err)
	// The encoded bytes are not valid UTF-8, forcing the heuristic path.
	assert.Equal(t, "NIÑO CAFÉ", readAll(t, bytes.NewReader(encoded)))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "", readAll(t, strings.NewReader("")))
}
