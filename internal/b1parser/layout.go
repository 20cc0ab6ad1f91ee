package b1parser

import (
	"strings"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
)

// lineSource identifies which physical line of a record pair a field is
// sliced from.
type lineSource int

const (
	line1 lineSource = iota + 1
	line2
)

// fieldSpec describes one fixed-width column of the report. Start is
// 1-based, matching the printed copybook the layout was lifted from.
type fieldSpec struct {
	name     string
	source   lineSource
	start    int
	length   int
	monetary bool
	assign   func(*models.Base1Record, string)
}

// fieldLayout is the contractual column map of the BASE 1 report. The
// positions are fixed by the mainframe print program and must not be made
// configurable; changing them silently breaks every downstream sheet.
var fieldLayout = []fieldSpec{
	{name: "OPERAC", source: line1, start: 1, length: 6,
		assign: func(r *models.Base1Record, v string) { r.Operac = v }},
	{name: "RS", source: line1, start: 9, length: 2,
		assign: func(r *models.Base1Record, v string) { r.RS = v }},
	{name: "MOVIM", source: line1, start: 13, length: 5,
		assign: func(r *models.Base1Record, v string) { r.Movim = v }},
	{name: "MONEDA ORIGINAL", source: line1, start: 20, length: 3,
		assign: func(r *models.Base1Record, v string) { r.MonedaOriginal = v }},
	{name: "IMPORTE ORIGINAL", source: line1, start: 23, length: 15, monetary: true,
		assign: func(r *models.Base1Record, v string) { r.ImporteOriginal = v }},
	{name: "MONEDA VISA", source: line1, start: 38, length: 3,
		assign: func(r *models.Base1Record, v string) { r.MonedaVisa = v }},
	{name: "IMPORT VISA", source: line1, start: 41, length: 15, monetary: true,
		assign: func(r *models.Base1Record, v string) { r.ImportVisa = v }},
	{name: "MONEDA AFECTADO", source: line1, start: 56, length: 3,
		assign: func(r *models.Base1Record, v string) { r.MonedaAfectado = v }},
	{name: "IMPORTE AFECTADO", source: line1, start: 59, length: 15, monetary: true,
		assign: func(r *models.Base1Record, v string) { r.ImporteAfectado = v }},
	{name: "TIPO CUENTA", source: line1, start: 74, length: 4,
		assign: func(r *models.Base1Record, v string) { r.TipoCuenta = v }},
	{name: "CUENTA AFECTADA", source: line1, start: 78, length: 20,
		assign: func(r *models.Base1Record, v string) { r.CuentaAfectada = v }},
	{name: "FECOPE", source: line1, start: 98, length: 9,
		assign: func(r *models.Base1Record, v string) { r.Fecope = v }},
	{name: "HORA", source: line1, start: 107, length: 7,
		assign: func(r *models.Base1Record, v string) { r.Hora = v }},
	{name: "FBASE1", source: line1, start: 114, length: 9,
		assign: func(r *models.Base1Record, v string) { r.Fbase1 = v }},
	{name: "EXPIRACION", source: line1, start: 123, length: 6,
		assign: func(r *models.Base1Record, v string) { r.Expiracion = v }},
	{name: "TERMINAL", source: line2, start: 1, length: 12,
		assign: func(r *models.Base1Record, v string) { r.Terminal = v }},
	{name: "TIPO", source: line2, start: 13, length: 5,
		assign: func(r *models.Base1Record, v string) { r.Tipo = v }},
	{name: "IDENTIFICACION", source: line2, start: 18, length: 15,
		assign: func(r *models.Base1Record, v string) { r.Identificacion = v }},
	{name: "ESTABLECIMIENTO", source: line2, start: 33, length: 26,
		assign: func(r *models.Base1Record, v string) { r.Establecimiento = v }},
	{name: "CIUDAD", source: line2, start: 59, length: 14,
		assign: func(r *models.Base1Record, v string) { r.Ciudad = v }},
	{name: "PAIS", source: line2, start: 73, length: 6,
		assign: func(r *models.Base1Record, v string) { r.Pais = v }},
	{name: "BIN ADQUIR.", source: line2, start: 79, length: 13,
		assign: func(r *models.Base1Record, v string) { r.BinAdquir = v }},
	{name: "PIN", source: line2, start: 92, length: 5,
		assign: func(r *models.Base1Record, v string) { r.Pin = v }},
	{name: "VIS.REFER", source: line2, start: 97, length: 12,
		assign: func(r *models.Base1Record, v string) { r.VisRefer = v }},
	{name: "TRNX", source: line2, start: 109, length: 5,
		assign: func(r *models.Base1Record, v string) { r.Trnx = v }},
	{name: "CAVV", source: line2, start: 114, length: 6,
		assign: func(r *models.Base1Record, v string) { r.Cavv = v }},
	{name: "POS.C.CODE", source: line2, start: 120, length: 21,
		assign: func(r *models.Base1Record, v string) { r.PosCCode = v }},
}

// sliceField cuts a fixed-width column out of a cleaned line and trims the
// surrounding padding. Lines shorter than the column range yield the
// available prefix, or the empty string when the column starts past the
// end of the line; out-of-range positions never fail.
func sliceField(line string, spec fieldSpec) string {
	start := spec.start - 1
	if start >= len(line) {
		return ""
	}
	end := start + spec.length
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}
