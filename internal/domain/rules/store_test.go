package rules

import (
	"reflect"
	"testing"

	"skill-path/internal/domain/skillset"
)

func TestStoreLoad_SkipsMalformedRows(t *testing.T) {
	st := NewStore()
	stats := st.Load(SourceSkill, []Row{
		{Antecedent: `frozenset({'python'})`, Consequent: `frozenset({'sql'})`, Confidence: 0.8, Lift: 1.5},
		{Antecedent: ``, Consequent: `frozenset({'sql'})`, Confidence: 0.8, Lift: 1.5},
		{Antecedent: `frozenset({'python'})`, Consequent: `{}`, Confidence: 0.8, Lift: 1.5},
		{Antecedent: `frozenset({'python'})`, Consequent: `frozenset({'sql'})`, Confidence: 0.8, Lift: 0},
	})

	if stats.Loaded != 1 || stats.Skipped != 3 {
		t.Fatalf("expected 1 loaded / 3 skipped, got %d / %d", stats.Loaded, stats.Skipped)
	}
	if st.Size(SourceSkill) != 1 {
		t.Fatalf("expected size 1, got %d", st.Size(SourceSkill))
	}
	if st.SkippedRows(SourceSkill) != 3 {
		t.Fatalf("expected 3 skipped rows, got %d", st.SkippedRows(SourceSkill))
	}
}

func TestStoreLoad_ClampsConfidence(t *testing.T) {
	st := NewStore()
	st.Load(SourceSkill, []Row{
		{Antecedent: `python`, Consequent: `sql`, Confidence: 1.7, Lift: 1.2},
		{Antecedent: `python`, Consequent: `docker`, Confidence: -0.3, Lift: 1.2},
	})

	user := skillset.New("python")
	got := st.QueryMatching(user, "sql", SourceSkill)
	if len(got) != 1 || got[0].Confidence != 1 {
		t.Fatalf("expected confidence clamped to 1, got %+v", got)
	}
	got = st.QueryMatching(user, "docker", SourceSkill)
	if len(got) != 1 || got[0].Confidence != 0 {
		t.Fatalf("expected confidence clamped to 0, got %+v", got)
	}
}

func TestQueryMatching_SubsetContainment(t *testing.T) {
	st := NewStore()
	st.Load(SourceSkill, []Row{
		{Antecedent: `python, sql`, Consequent: `spark`, Confidence: 0.9, Lift: 2.0},
		{Antecedent: `python, docker`, Consequent: `spark`, Confidence: 0.7, Lift: 1.5},
		{Antecedent: `python`, Consequent: `airflow`, Confidence: 0.6, Lift: 1.3},
	})

	user := skillset.New("python", "sql", "git")

	// Only the rule whose whole antecedent the user already holds fires.
	got := st.QueryMatching(user, "spark", SourceSkill)
	if len(got) != 1 {
		t.Fatalf("expected 1 matching rule, got %d", len(got))
	}
	if got[0].Confidence != 0.9 {
		t.Fatalf("expected the python+sql rule, got %+v", got[0])
	}

	if got := st.QueryMatching(user, "missing", SourceSkill); len(got) != 0 {
		t.Fatalf("expected no match for unknown target, got %d", len(got))
	}
	if got := st.QueryMatching(user, "", SourceSkill); got != nil {
		t.Fatalf("expected nil for empty target")
	}
	if got := st.QueryMatching(user, "spark", SourceCategory); got != nil {
		t.Fatalf("expected nil for unloaded source")
	}
}

func TestStoreSources_SpecificityOrder(t *testing.T) {
	st := NewStore()
	st.Load(SourceCategory, []Row{{Antecedent: `data`, Consequent: `cloud`, Confidence: 0.5, Lift: 1.1}})
	st.Load(SourceSkill, []Row{{Antecedent: `python`, Consequent: `sql`, Confidence: 0.5, Lift: 1.1}})

	if got := st.Sources(); !reflect.DeepEqual(got, []Source{SourceSkill, SourceCategory}) {
		t.Fatalf("unexpected source order: %v", got)
	}
	if st.Empty() {
		t.Fatalf("expected store not empty")
	}
}

func TestStoreEmpty(t *testing.T) {
	if !NewStore().Empty() {
		t.Fatalf("expected new store to be empty")
	}
	var st *Store
	if !st.Empty() {
		t.Fatalf("expected nil store to be empty")
	}
}
