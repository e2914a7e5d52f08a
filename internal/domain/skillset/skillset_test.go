package skillset

import (
	"reflect"
	"testing"
)

func TestNormalizeToken(t *testing.T) {
	if got := NormalizeToken("  Machine   Learning "); got != "machine learning" {
		t.Fatalf("expected %q, got %q", "machine learning", got)
	}
	if got := NormalizeToken("   "); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestFromSlice_NormalizesAndDropsEmpty(t *testing.T) {
	s := FromSlice([]string{"Python", " SQL ", "", "  ", "python"})
	if s.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.Len())
	}
	if !s.Contains("PYTHON") {
		t.Fatalf("expected normalized lookup to find python")
	}
	if !s.Contains("sql") {
		t.Fatalf("expected sql present")
	}
}

func TestSubsetOf(t *testing.T) {
	user := New("python", "sql", "git")

	if !New("python", "sql").SubsetOf(user) {
		t.Fatalf("expected subset")
	}
	if New("python", "docker").SubsetOf(user) {
		t.Fatalf("expected not a subset")
	}
	if !New().SubsetOf(user) {
		t.Fatalf("expected empty set to be a subset of everything")
	}
	if !New().SubsetOf(New()) {
		t.Fatalf("expected empty set to be a subset of the empty set")
	}
}

func TestIntersectDiffSorted(t *testing.T) {
	a := New("python", "sql", "git")
	b := New("sql", "docker")

	if got := a.Intersect(b).Sorted(); !reflect.DeepEqual(got, []string{"sql"}) {
		t.Fatalf("unexpected intersection: %v", got)
	}
	if got := a.Diff(b).Sorted(); !reflect.DeepEqual(got, []string{"git", "python"}) {
		t.Fatalf("unexpected diff: %v", got)
	}
	if got := b.Diff(a).Sorted(); !reflect.DeepEqual(got, []string{"docker"}) {
		t.Fatalf("unexpected diff: %v", got)
	}
}

func TestClone_Independent(t *testing.T) {
	a := New("python")
	b := a.Clone()
	b["sql"] = struct{}{}
	if a.Contains("sql") {
		t.Fatalf("clone mutated the original")
	}
}
