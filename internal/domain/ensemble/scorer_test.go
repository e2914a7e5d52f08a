package ensemble

import (
	"math"
	"testing"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScorer_Unavailable(t *testing.T) {
	s := NewScorer(rules.NewStore())
	if s.Available() {
		t.Fatalf("expected scorer unavailable on empty store")
	}

	got := s.SkillModelScores(skillset.New("python"), skillset.New("spark"))
	d := got["spark"]
	if d.ModelScore != 0 || len(d.Sources) != 0 {
		t.Fatalf("expected zero detail, got %+v", d)
	}

	var nilScorer *Scorer
	if nilScorer.Available() {
		t.Fatalf("expected nil scorer unavailable")
	}
}

func TestScorer_PerSourceMeanAndMax(t *testing.T) {
	st := rules.NewStore()
	st.Load(rules.SourceSkill, []rules.Row{
		{Antecedent: `python`, Consequent: `spark`, Confidence: 0.8, Lift: 2.0},
		{Antecedent: `sql`, Consequent: `spark`, Confidence: 0.4, Lift: 1.0},
	})
	st.Load(rules.SourceCategory, []rules.Row{
		{Antecedent: `python`, Consequent: `spark`, Confidence: 0.9, Lift: 3.0},
	})

	s := NewScorer(st)
	got := s.SkillModelScores(skillset.New("python", "sql"), skillset.New("spark"))
	d := got["spark"]

	if !floatEq(d.PerSource[rules.SourceSkill].ConfidenceMean, 0.6) {
		t.Fatalf("expected A1 mean 0.6, got %v", d.PerSource[rules.SourceSkill].ConfidenceMean)
	}
	if !floatEq(d.PerSource[rules.SourceCategory].ConfidenceMean, 0.9) {
		t.Fatalf("expected A2 mean 0.9, got %v", d.PerSource[rules.SourceCategory].ConfidenceMean)
	}

	// Model score is the best per-source mean, not the global mean.
	if !floatEq(d.ModelScore, 0.9) {
		t.Fatalf("expected model score 0.9, got %v", d.ModelScore)
	}
	if d.BestSource != rules.SourceCategory {
		t.Fatalf("expected best source A2, got %s", d.BestSource)
	}
	if d.TotalSignals != 3 {
		t.Fatalf("expected 3 signals, got %d", d.TotalSignals)
	}
	if !floatEq(d.ConfidenceMean, (0.8+0.4+0.9)/3) {
		t.Fatalf("unexpected global confidence mean %v", d.ConfidenceMean)
	}
	if !floatEq(d.LiftMean, 2.0) {
		t.Fatalf("unexpected global lift mean %v", d.LiftMean)
	}
}

func TestScorer_TieBreakPrefersMoreSpecificSource(t *testing.T) {
	st := rules.NewStore()
	st.Load(rules.SourceSkill, []rules.Row{
		{Antecedent: `python`, Consequent: `spark`, Confidence: 0.7, Lift: 1.5},
	})
	st.Load(rules.SourceCombined, []rules.Row{
		{Antecedent: `python`, Consequent: `spark`, Confidence: 0.7, Lift: 1.5},
	})

	s := NewScorer(st)
	d := s.SkillModelScores(skillset.New("python"), skillset.New("spark"))["spark"]

	if d.BestSource != rules.SourceSkill {
		t.Fatalf("expected A1 to win the tie, got %s", d.BestSource)
	}
	if !floatEq(d.ModelScore, 0.7) {
		t.Fatalf("expected model score 0.7, got %v", d.ModelScore)
	}
}

func TestScorer_NoEvidence(t *testing.T) {
	st := rules.NewStore()
	st.Load(rules.SourceSkill, []rules.Row{
		{Antecedent: `java`, Consequent: `spring`, Confidence: 0.9, Lift: 2.0},
	})

	s := NewScorer(st)
	d := s.SkillModelScores(skillset.New("python"), skillset.New("spark"))["spark"]

	if d.ModelScore != 0 || len(d.Sources) != 0 || d.BestSource != "" {
		t.Fatalf("expected empty verdict, got %+v", d)
	}
}
