package b1parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/RodrigoProjectsFun/Coldview-Stuff/internal/models"
)

const (
	// headerPrefix introduces a cardholder header line.
	headerPrefix = "- TARJETA"

	// initialCapacity pre-sizes the record slice for a typical daily
	// report. Tuning only; the slice grows without bound.
	initialCapacity = 1024
)

var (
	// bannerRe matches the page-break banner marker anywhere in a line.
	bannerRe = regexp.MustCompile(`\*{5,}`)
	// dashRunRe matches the separator marker that closes a banner region.
	dashRunRe = regexp.MustCompile(`-{5,}`)
	// strayRe matches separator lines that appear outside a banner region.
	strayRe = regexp.MustCompile(`^\*+|^-+$`)
	// headerNameRe captures the cardholder name after the NOMBRE marker.
	headerNameRe = regexp.MustCompile(`\bNOMBRE\s+(.*)`)
)

// ScanStats summarizes one pass over a report. Exposed by the inspect
// command and logged after each conversion.
type ScanStats struct {
	TotalLines    int
	SkippedLines  int
	BlankLines    int
	BannerRegions int
	Headers       int
	DataLines     int
	Records       int
	DroppedRS     int
	OrphanLines   int
}

// reportLine is a buffered data line waiting for its partner. The card
// context is captured when the line is buffered so that a pair straddling a
// cardholder header keeps the attribution of its first line.
type reportLine struct {
	raw    string
	indent int
	card   string
	name   string
}

// scanState is the cross-line state of the classifier. One value exists
// per scan; it is never shared between invocations.
type scanState struct {
	inSkipMode  bool
	dashCount   int
	currentCard string
	currentName string
	pending     *reportLine
}

// scanner consumes report lines one at a time and accumulates the
// linealized records in input order.
type scanner struct {
	state   scanState
	records []models.Base1Record
	stats   ScanStats
}

func newScanner() *scanner {
	return &scanner{records: make([]models.Base1Record, 0, initialCapacity)}
}

// consume classifies a single line and routes it. The checks run in a
// fixed order: banner, skip region, blank, cardholder header, stray
// separator, headerless data, data.
func (s *scanner) consume(raw string) {
	s.stats.TotalLines++
	trimmed := strings.TrimSpace(raw)

	// A banner always (re)opens a skip region, even when one is already
	// open, and restarts the separator count.
	if bannerRe.MatchString(trimmed) {
		if !s.state.inSkipMode {
			s.stats.BannerRegions++
		}
		s.state.inSkipMode = true
		s.state.dashCount = 0
		s.stats.SkippedLines++
		return
	}

	// Inside a skip region every line is swallowed. The second separator
	// closes the region but is itself consumed: treating it as a stray
	// separator would desynchronize the next data pair.
	if s.state.inSkipMode {
		if dashRunRe.MatchString(trimmed) {
			s.state.dashCount++
			if s.state.dashCount >= 2 {
				s.state.inSkipMode = false
				s.state.dashCount = 0
			}
		}
		s.stats.SkippedLines++
		return
	}

	if trimmed == "" {
		s.stats.BlankLines++
		return
	}

	if strings.HasPrefix(trimmed, headerPrefix) {
		s.stats.Headers++
		s.readHeader(trimmed)
		return
	}

	// Stray separators outside a banner region carry no data.
	if strayRe.MatchString(trimmed) {
		return
	}

	// Data lines before the first cardholder header cannot be attributed.
	if s.state.currentCard == "" {
		return
	}

	s.stats.DataLines++
	s.submit(raw)
}

// readHeader updates the cardholder context from a header line. The card
// id is the third whitespace-separated token. When the NOMBRE marker is
// missing the previous name is kept; some header variants omit it and the
// report relies on the carry-over.
//
// A pending data line is deliberately left in place: it still belongs to
// the previous card and pairs (or is dropped at end of input) under that
// attribution.
func (s *scanner) readHeader(trimmed string) {
	tokens := strings.Fields(trimmed)
	if len(tokens) > 2 {
		s.state.currentCard = tokens[2]
	}
	if m := headerNameRe.FindStringSubmatch(trimmed); m != nil {
		s.state.currentName = strings.TrimSpace(m[1])
	}
}

// submit feeds a data line to the pair assembler. The first line of a pair
// is buffered with its indentation; the second completes the pair and
// emits a candidate record.
func (s *scanner) submit(raw string) {
	if s.state.pending == nil {
		s.state.pending = &reportLine{
			raw:    raw,
			indent: leadingWhitespace(raw),
			card:   s.state.currentCard,
			name:   s.state.currentName,
		}
		return
	}
	pending := s.state.pending
	s.state.pending = nil
	s.emit(pending, raw)
}

// emit slices a completed pair into a record and appends it when the RS
// gate accepts it. Both lines are stripped of line1's indentation before
// slicing so the fixed columns line up regardless of print offset.
func (s *scanner) emit(pending *reportLine, line2raw string) {
	cleanL1 := trimIndent(pending.raw, pending.indent)
	cleanL2 := trimIndent(line2raw, pending.indent)

	rec := models.Base1Record{
		Tarjeta: pending.card,
		Nombre:  pending.name,
	}
	for _, spec := range fieldLayout {
		src := cleanL1
		if spec.source == line2 {
			src = cleanL2
		}
		value := sliceField(src, spec)
		if spec.monetary {
			value = SanitizeAmount(value)
		}
		spec.assign(&rec, value)
	}

	// Misaligned pairs show up as a non-numeric RS column; they are
	// dropped without diagnostics, only counted.
	if !isNumericRS(rec.RS) {
		s.stats.DroppedRS++
		return
	}

	s.records = append(s.records, rec)
}

// finish closes the scan. A data line still waiting for a partner is an
// orphan and never becomes a record.
func (s *scanner) finish() ([]models.Base1Record, ScanStats) {
	if s.state.pending != nil {
		s.stats.OrphanLines++
		s.state.pending = nil
	}
	s.stats.Records = len(s.records)
	return s.records, s.stats
}

// SanitizeAmount strips every character of a monetary substring that is
// not a digit, a dot or a minus, preserving order. An empty result maps to
// "0". No numeric validation happens here: "----" sanitizes to "-" and is
// passed through as-is.
func SanitizeAmount(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// isNumericRS reports whether a trimmed RS value consists solely of ASCII
// digits. The mainframe prints RS as a zero-padded two-digit code; signed,
// decimal or scientific forms never occur in real reports, so anything
// broader would only admit misaligned lines.
func isNumericRS(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leadingWhitespace counts the leading whitespace characters of a line.
func leadingWhitespace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// trimIndent removes exactly indent leading characters; lines shorter than
// the indent collapse to empty.
func trimIndent(line string, indent int) string {
	if indent >= len(line) {
		return ""
	}
	return line[indent:]
}
