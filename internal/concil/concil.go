// Package concil matches debt notes against credit notes across every
// linealized file in a folder at once. Matching per file pair misses the
// credit notes that clear debt spread over several files; loading the two
// piles whole and joining once solves that.
package concil

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/common"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/fileutils"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		common.SetLogger(logger)
	}
}

// Options configures a conciliation run.
type Options struct {
	Folder        string
	DebtPattern   string
	CreditPattern string
}

// PileRow is the projection of a linealized record used for matching.
// Only the join key and the amount matter; the remaining 26 columns are
// ignored on read. Card numbers stay strings so leading zeros survive.
type PileRow struct {
	Tarjeta         string `csv:"TARJETA"`
	Operac          string `csv:"OPERAC"`
	ImporteOriginal string `csv:"IMPORTE ORIGINAL"`

	// OriginFile records which pile file the row came from. Not a CSV
	// column; filled in after load.
	OriginFile string `csv:"-"`
}

// Match is one conciliated debt/credit pairing.
type Match struct {
	Tarjeta         string `csv:"TARJETA"`
	Operac          string `csv:"OPERAC"`
	ImporteOriginal string `csv:"IMPORTE ORIGINAL"`
	OriginDebt      string `csv:"ORIGIN_DEBT"`
	OriginCredit    string `csv:"ORIGIN_CREDIT"`
}

// Subtotal is the per file-pair breakdown of the matches: how many debt
// rows a given credit file cleared in a given debt file, and the summed
// debt amount covered.
type Subtotal struct {
	OriginDebt   string `csv:"ORIGIN_DEBT"`
	OriginCredit string `csv:"ORIGIN_CREDIT"`
	Matches      int    `csv:"MATCHES"`
	Amount       string `csv:"SUBTOTAL_AMOUNT"`
}

// Result carries the outcome of one conciliation run.
type Result struct {
	Matches   []Match
	Subtotals []Subtotal
}

// Run loads the debt and credit piles named by the options and joins them
// on card + operation number. Duplicate keys pair combinatorially, the
// same way a spreadsheet join would.
func Run(opts Options) (*Result, error) {
	log.WithField("folder", opts.Folder).Info("Scanning folder for conciliation piles")

	debt, err := loadPile(opts.Folder, opts.DebtPattern)
	if err != nil {
		return nil, &parsererror.ConciliationError{Stage: "loading debt pile", Err: err}
	}
	credit, err := loadPile(opts.Folder, opts.CreditPattern)
	if err != nil {
		return nil, &parsererror.ConciliationError{Stage: "loading credit pile", Err: err}
	}

	if len(debt) == 0 || len(credit) == 0 {
		return nil, &parsererror.ConciliationError{
			Stage: "matching",
			Err:   fmt.Errorf("one of the piles is empty (debt=%d, credit=%d rows)", len(debt), len(credit)),
		}
	}

	log.WithFields(logrus.Fields{
		"debt_rows":   len(debt),
		"credit_rows": len(credit),
	}).Info("Performing global match")

	result := match(debt, credit)

	log.WithField("matches", len(result.Matches)).Info("Conciliation completed")
	return result, nil
}

// WriteReports writes the matched rows and the per-file subtotal breakdown
// as two CSV files next to each other.
func (r *Result) WriteReports(matchFile, breakdownFile string) error {
	if err := common.WriteCSVFile(r.Matches, matchFile); err != nil {
		return &parsererror.ConciliationError{Stage: "writing match report", Err: err}
	}
	if err := common.WriteCSVFile(r.Subtotals, breakdownFile); err != nil {
		return &parsererror.ConciliationError{Stage: "writing breakdown report", Err: err}
	}
	return nil
}

// loadPile reads every file matching pattern into one combined slice,
// tagging each row with its origin file. Files missing the required
// columns are skipped with a warning, not fatal: the accounting folder
// accumulates unrelated sheets over time.
func loadPile(folder, pattern string) ([]PileRow, error) {
	files, err := fileutils.ListFilesMatching(folder, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.WithField("pattern", pattern).Warn("No files found matching pattern")
		return nil, nil
	}

	log.WithFields(logrus.Fields{
		"pattern": pattern,
		"count":   len(files),
	}).Info("Loading pile files")

	var all []PileRow
	for _, f := range files {
		rows, err := common.ReadCSVFile[PileRow](f)
		if err != nil {
			log.WithError(err).WithField("file", f).Warn("Skipping unreadable pile file")
			continue
		}

		origin := filepath.Base(f)
		for _, row := range rows {
			if row.Tarjeta == "" || row.Operac == "" {
				continue
			}
			row.OriginFile = origin
			all = append(all, row)
		}
	}
	return all, nil
}

func matchKey(r PileRow) string {
	return r.Tarjeta + "|" + r.Operac
}

// match inner-joins the two piles on card + operation number and computes
// the per file-pair subtotals over the debt amounts.
func match(debt, credit []PileRow) *Result {
	creditByKey := make(map[string][]PileRow, len(credit))
	for _, c := range credit {
		key := matchKey(c)
		creditByKey[key] = append(creditByKey[key], c)
	}

	type pairKey struct{ debt, credit string }
	counts := make(map[pairKey]int)
	amounts := make(map[pairKey]decimal.Decimal)

	var matches []Match
	for _, d := range debt {
		for _, c := range creditByKey[matchKey(d)] {
			matches = append(matches, Match{
				Tarjeta:         d.Tarjeta,
				Operac:          d.Operac,
				ImporteOriginal: d.ImporteOriginal,
				OriginDebt:      d.OriginFile,
				OriginCredit:    c.OriginFile,
			})

			pk := pairKey{debt: d.OriginFile, credit: c.OriginFile}
			counts[pk]++
			amounts[pk] = amounts[pk].Add(models.ParseAmount(d.ImporteOriginal))
		}
	}

	subtotals := make([]Subtotal, 0, len(counts))
	for pk, n := range counts {
		subtotals = append(subtotals, Subtotal{
			OriginDebt:   pk.debt,
			OriginCredit: pk.credit,
			Matches:      n,
			Amount:       amounts[pk].StringFixed(2),
		})
	}
	sort.Slice(subtotals, func(i, j int) bool {
		if subtotals[i].OriginDebt != subtotals[j].OriginDebt {
			return subtotals[i].OriginDebt < subtotals[j].OriginDebt
		}
		return subtotals[i].OriginCredit < subtotals[j].OriginCredit
	})

	return &Result{Matches: matches, Subtotals: subtotals}
}
