// Package rulesource reads mined rule table exports from CSV files.
// The exports come from an external pattern-mining step; this package
// only transports rows, leaving parsing and malformed-row skipping to
// the rule store.
package rulesource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"skill-path/internal/domain/rules"
)

// ReadFile loads one rule table CSV. The header row names the columns;
// both singular and plural antecedent/consequent headers are accepted.
// Numeric cells that fail to parse become zero and leave the row to be
// rejected by the store's lift check.
func ReadFile(path string) ([]rules.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func Read(r io.Reader) ([]rules.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := columnIndex(header)
	if cols.antecedent < 0 || cols.consequent < 0 {
		return nil, fmt.Errorf("missing antecedent/consequent columns in header: %v", header)
	}

	out := make([]rules.Row, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A torn record is skipped like any other malformed row.
			continue
		}

		out = append(out, rules.Row{
			Antecedent: field(rec, cols.antecedent),
			Consequent: field(rec, cols.consequent),
			Support:    floatField(rec, cols.support),
			Confidence: floatField(rec, cols.confidence),
			Lift:       floatField(rec, cols.lift),
		})
	}
	return out, nil
}

type columns struct {
	antecedent int
	consequent int
	support    int
	confidence int
	lift       int
}

func columnIndex(header []string) columns {
	cols := columns{antecedent: -1, consequent: -1, support: -1, confidence: -1, lift: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "antecedent", "antecedents":
			cols.antecedent = i
		case "consequent", "consequents":
			cols.consequent = i
		case "support":
			cols.support = i
		case "confidence":
			cols.confidence = i
		case "lift":
			cols.lift = i
		}
	}
	return cols
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

func floatField(rec []string, idx int) float64 {
	raw := strings.TrimSpace(field(rec, idx))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
