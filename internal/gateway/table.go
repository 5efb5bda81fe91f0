package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// writeTable writes a header and rows as CSV.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// readTable reads a CSV table and checks that its header matches want exactly.
func readTable(r io.Reader, want []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range want {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], name)
		}
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

func formatInt(v int) string { return strconv.Itoa(v) }

// formatFloat uses the shortest representation that parses back to v.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatTime(t time.Time) string { return t.Format(time.RFC3339Nano) }

func formatDecimal(d decimal.Decimal) string { return d.String() }

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// cellParser collects the first parse error of a row so callers can decode
// every cell and check once.
type cellParser struct {
	row int
	err error
}

func (p *cellParser) fail(column, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("row %d: invalid %s '%s': %w", p.row, column, value, err)
	}
}

func (p *cellParser) asInt(column, value string) int {
	v, err := strconv.Atoi(value)
	if err != nil {
		p.fail(column, value, err)
	}
	return v
}

func (p *cellParser) asFloat(column, value string) float64 {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.fail(column, value, err)
	}
	return v
}

func (p *cellParser) asDecimal(column, value string) decimal.Decimal {
	v, err := decimal.NewFromString(value)
	if err != nil {
		p.fail(column, value, err)
	}
	return v
}

func (p *cellParser) asTime(column, value string) time.Time {
	v, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		p.fail(column, value, err)
	}
	return v
}
