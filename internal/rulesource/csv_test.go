package rulesource

import (
	"strings"
	"testing"
)

func TestRead_PluralHeaders(t *testing.T) {
	in := strings.NewReader(
		"antecedents,consequents,support,confidence,lift\n" +
			"\"frozenset({'python'})\",\"frozenset({'sql'})\",0.2,0.8,1.5\n",
	)

	rows, err := Read(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.Antecedent != "frozenset({'python'})" || r.Consequent != "frozenset({'sql'})" {
		t.Fatalf("unexpected row: %+v", r)
	}
	if r.Support != 0.2 || r.Confidence != 0.8 || r.Lift != 1.5 {
		t.Fatalf("unexpected metrics: %+v", r)
	}
}

func TestRead_SingularHeadersAndReordered(t *testing.T) {
	in := strings.NewReader(
		"lift,consequent,antecedent\n" +
			"2.0,sql,python\n",
	)

	rows, err := Read(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Antecedent != "python" || rows[0].Consequent != "sql" || rows[0].Lift != 2.0 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	// Absent metric columns default to zero; the store rejects the row
	// later if lift is missing, not the reader.
	if rows[0].Support != 0 || rows[0].Confidence != 0 {
		t.Fatalf("expected zero defaults, got %+v", rows[0])
	}
}

func TestRead_BadNumbersBecomeZero(t *testing.T) {
	in := strings.NewReader(
		"antecedent,consequent,support,confidence,lift\n" +
			"python,sql,n/a,oops,1.5\n",
	)

	rows, err := Read(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rows[0].Support != 0 || rows[0].Confidence != 0 || rows[0].Lift != 1.5 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestRead_MissingRequiredColumns(t *testing.T) {
	in := strings.NewReader("foo,bar\n1,2\n")
	if _, err := Read(in); err == nil {
		t.Fatalf("expected error for missing antecedent/consequent columns")
	}
}

func TestRead_EmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
