package dto

type SourceSignalResponse struct {
	ConfidenceMean float64 `json:"confidence_mean"`
	LiftMean       float64 `json:"lift_mean"`
	RuleCount      int     `json:"rule_count"`
}

type ScoreDetailResponse struct {
	PerSource      map[string]SourceSignalResponse `json:"per_source"`
	ModelScore     float64                         `json:"model_score"`
	BestConfidence float64                         `json:"best_confidence"`
	BestSource     string                          `json:"best_source,omitempty"`
	Sources        []string                        `json:"sources"`
	TotalSignals   int                             `json:"total_signals"`
}
