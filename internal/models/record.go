// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Base1Record is one linealized transaction from the BASE 1 report.
// Field order matches the report layout: card context first, then the
// fifteen line-1 fields, then the twelve line-2 fields. The csv tags carry
// the exact column names expected by the downstream conciliation sheets,
// including their original Spanish spelling and punctuation.
type Base1Record struct {
	Tarjeta         string `csv:"TARJETA"`
	Nombre          string `csv:"NOMBRE"`
	Operac          string `csv:"OPERAC"`
	RS              string `csv:"RS"`
	Movim           string `csv:"MOVIM"`
	MonedaOriginal  string `csv:"MONEDA ORIGINAL"`
	ImporteOriginal string `csv:"IMPORTE ORIGINAL"`
	MonedaVisa      string `csv:"MONEDA VISA"`
	ImportVisa      string `csv:"IMPORT VISA"`
	MonedaAfectado  string `csv:"MONEDA AFECTADO"`
	ImporteAfectado string `csv:"IMPORTE AFECTADO"`
	TipoCuenta      string `csv:"TIPO CUENTA"`
	CuentaAfectada  string `csv:"CUENTA AFECTADA"`
	Fecope          string `csv:"FECOPE"`
	Hora            string `csv:"HORA"`
	Fbase1          string `csv:"FBASE1"`
	Expiracion      string `csv:"EXPIRACION"`
	Terminal        string `csv:"TERMINAL"`
	Tipo            string `csv:"TIPO"`
	Identificacion  string `csv:"IDENTIFICACION"`
	Establecimiento string `csv:"ESTABLECIMIENTO"`
	Ciudad          string `csv:"CIUDAD"`
	Pais            string `csv:"PAIS"`
	BinAdquir       string `csv:"BIN ADQUIR."`
	Pin             string `csv:"PIN"`
	VisRefer        string `csv:"VIS.REFER"`
	Trnx            string `csv:"TRNX"`
	Cavv            string `csv:"CAVV"`
	PosCCode        string `csv:"POS.C.CODE"`
}

// ParseAmount converts a sanitized monetary string to a decimal value.
// The scanner only guarantees the characters [0-9.-], so anything that
// still fails to parse (stray dashes, multiple dots) maps to zero rather
// than an error, matching the report's best-effort numeric policy.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// ImporteOriginalDecimal returns the original amount as a decimal.
func (r *Base1Record) ImporteOriginalDecimal() decimal.Decimal {
	return ParseAmount(r.ImporteOriginal)
}

// ImportVisaDecimal returns the VISA amount as a decimal.
func (r *Base1Record) ImportVisaDecimal() decimal.Decimal {
	return ParseAmount(r.ImportVisa)
}

// ImporteAfectadoDecimal returns the affected-account amount as a decimal.
func (r *Base1Record) ImporteAfectadoDecimal() decimal.Decimal {
	return ParseAmount(r.ImporteAfectado)
}
