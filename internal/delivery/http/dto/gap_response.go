package dto

type GapResponse struct {
	Matching       []string           `json:"matching"`
	Missing        []string           `json:"missing"`
	Extra          []string           `json:"extra"`
	Coverage       float64            `json:"coverage"`
	BaseImportance map[string]float64 `json:"base_importance"`
}
