package path

import (
	"math"
	"strings"
	"testing"

	"skill-path/internal/domain/ensemble"
	"skill-path/internal/domain/rules"
)

func TestPrioritize_OrdersByFinalScoreDesc(t *testing.T) {
	missing := []string{"spark", "aws", "cobol"}
	base := map[string]float64{"spark": 0.7, "aws": 0.7, "cobol": 0.5}
	scores := map[string]ensemble.ScoreDetail{
		"spark": {ModelScore: 0.9, Sources: []rules.Source{rules.SourceSkill}, TotalSignals: 4, ConfidenceMean: 0.9, LiftMean: 2.1},
		"aws":   {ModelScore: 0.3, Sources: []rules.Source{rules.SourceCategory}, TotalSignals: 1, ConfidenceMean: 0.3, LiftMean: 1.2},
	}

	recs := Prioritize(missing, base, scores, nil, DefaultWeights, nil)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Skill != "spark" {
		t.Fatalf("expected spark first, got %s", recs[0].Skill)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].FinalScore > recs[i-1].FinalScore {
			t.Fatalf("final score not descending at %d", i)
		}
	}
	if math.Abs(recs[0].FinalScore-(0.5*0.7+0.5*0.9)) > 1e-9 {
		t.Fatalf("unexpected final score for spark: %v", recs[0].FinalScore)
	}
}

func TestPrioritize_TieBreaksAlphabetically(t *testing.T) {
	missing := []string{"zeppelin", "airflow"}
	base := map[string]float64{"zeppelin": 0.5, "airflow": 0.5}

	recs := Prioritize(missing, base, nil, nil, DefaultWeights, nil)
	if recs[0].Skill != "airflow" || recs[1].Skill != "zeppelin" {
		t.Fatalf("expected alphabetical tie-break, got %s, %s", recs[0].Skill, recs[1].Skill)
	}
}

func TestPrioritize_NilScoresFallsBackToImportance(t *testing.T) {
	recs := Prioritize([]string{"spark"}, map[string]float64{"spark": 0.7}, nil, nil, Weights{Importance: 1, Model: 0}, nil)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	r := recs[0]
	if r.ModelScore != 0 || len(r.Sources) != 0 {
		t.Fatalf("expected no model evidence, got %+v", r)
	}
	if math.Abs(r.FinalScore-0.7) > 1e-9 {
		t.Fatalf("expected final score to equal base importance, got %v", r.FinalScore)
	}
	if !strings.Contains(r.Explanation, "No association-rule evidence") {
		t.Fatalf("expected gap-only explanation, got %q", r.Explanation)
	}
}

func TestPrioritize_DeduplicatesAndNormalizes(t *testing.T) {
	recs := Prioritize([]string{"  Spark ", "spark", ""}, nil, nil, nil, DefaultWeights, nil)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation after dedupe, got %d", len(recs))
	}
	if recs[0].Skill != "spark" {
		t.Fatalf("expected normalized token, got %q", recs[0].Skill)
	}
}

func TestPrioritize_CategoriesAttached(t *testing.T) {
	recs := Prioritize(
		[]string{"spark"},
		map[string]float64{"spark": 0.7},
		nil,
		map[string]string{"spark": "Data Engineering"},
		DefaultWeights,
		nil,
	)
	if recs[0].Category != "Data Engineering" {
		t.Fatalf("expected category attached, got %q", recs[0].Category)
	}
}

func TestWeightsNormalize_Clamps(t *testing.T) {
	w := Weights{Importance: 1.5, Model: -0.2}.Normalize(nil)
	if w.Importance != 1 || w.Model != 0 {
		t.Fatalf("expected clamped weights, got %+v", w)
	}
}

func TestExplain_CitesRuleEvidence(t *testing.T) {
	recs := Prioritize(
		[]string{"spark"},
		map[string]float64{"spark": 0.7},
		map[string]ensemble.ScoreDetail{"spark": {
			ModelScore:     0.8,
			Sources:        []rules.Source{rules.SourceSkill, rules.SourceCombined},
			TotalSignals:   5,
			ConfidenceMean: 0.8,
			LiftMean:       2.3,
		}},
		nil,
		DefaultWeights,
		nil,
	)

	exp := recs[0].Explanation
	if !strings.Contains(exp, "80% of profiles") {
		t.Fatalf("expected confidence citation, got %q", exp)
	}
	if !strings.Contains(exp, "A1, A3") {
		t.Fatalf("expected source citation, got %q", exp)
	}
	if !strings.Contains(exp, "5 rules") {
		t.Fatalf("expected rule count citation, got %q", exp)
	}
}
