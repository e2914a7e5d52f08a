package dto

type SkillRecommendationResponse struct {
	Skill          string   `json:"skill"`
	Category       string   `json:"category,omitempty"`
	BaseImportance float64  `json:"base_importance"`
	ModelScore     float64  `json:"model_score"`
	FinalScore     float64  `json:"final_score"`
	Sources        []string `json:"sources"`
	Confidence     float64  `json:"confidence"`
	Lift           float64  `json:"lift"`
	Explanation    string   `json:"explanation"`
}

type LearningPhaseResponse struct {
	PhaseNumber   int                           `json:"phase_number"`
	Title         string                        `json:"title"`
	Difficulty    string                        `json:"difficulty"`
	Skills        []SkillRecommendationResponse `json:"skills"`
	Categories    []string                      `json:"categories,omitempty"`
	DurationWeeks int                           `json:"duration_weeks"`
}

type LearningPathResponse struct {
	Phases        []LearningPhaseResponse `json:"phases"`
	TotalWeeks    int                     `json:"total_weeks"`
	ModelCoverage float64                 `json:"model_coverage"`
	Summary       string                  `json:"summary"`
	Degraded      bool                    `json:"degraded"`
}
