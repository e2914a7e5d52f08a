package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/domain/path"
	"skill-path/internal/domain/rules"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"
)

type LearningPathHandler struct {
	uc       usecase.LearningPathUsecase
	validate *validator.Validate
}

type learningPathRequest struct {
	UserSkills       []string `json:"user_skills" validate:"max=500,dive,max=200"`
	TargetSkills     []string `json:"target_skills" validate:"max=500,dive,max=200"`
	MaxPhases        int      `json:"max_phases" validate:"gte=0,lte=50"`
	SkillsPerPhase   int      `json:"skills_per_phase" validate:"gte=0,lte=50"`
	WeightImportance float64  `json:"weight_importance"`
	WeightModel      float64  `json:"weight_model"`
}

func NewLearningPathHandler(uc usecase.LearningPathUsecase, validate *validator.Validate) *LearningPathHandler {
	return &LearningPathHandler{uc: uc, validate: validate}
}

func (h *LearningPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/learning-path", h.BuildLearningPath)
}

func (h *LearningPathHandler) BuildLearningPath(c fiber.Ctx) error {
	var req learningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid request", nil, err)
	}

	built, err := h.uc.BuildLearningPath(c.Context(), usecase.PathParams{
		UserSkills:       req.UserSkills,
		TargetSkills:     req.TargetSkills,
		MaxPhases:        req.MaxPhases,
		SkillsPerPhase:   req.SkillsPerPhase,
		WeightImportance: req.WeightImportance,
		WeightModel:      req.WeightModel,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toLearningPathResponse(built))
}

func toLearningPathResponse(p path.Path) dto.LearningPathResponse {
	out := dto.LearningPathResponse{
		Phases:        make([]dto.LearningPhaseResponse, 0, len(p.Phases)),
		TotalWeeks:    p.TotalWeeks,
		ModelCoverage: p.ModelCoverage,
		Summary:       p.Summary,
		Degraded:      p.Degraded,
	}
	for _, ph := range p.Phases {
		out.Phases = append(out.Phases, dto.LearningPhaseResponse{
			PhaseNumber:   ph.Number,
			Title:         ph.Title,
			Difficulty:    ph.Difficulty,
			Skills:        toRecommendationResponses(ph.Skills),
			Categories:    ph.Categories,
			DurationWeeks: ph.DurationWeeks,
		})
	}
	return out
}

func toRecommendationResponses(recs []path.Recommendation) []dto.SkillRecommendationResponse {
	out := make([]dto.SkillRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.SkillRecommendationResponse{
			Skill:          r.Skill,
			Category:       r.Category,
			BaseImportance: r.BaseImportance,
			ModelScore:     r.ModelScore,
			FinalScore:     r.FinalScore,
			Sources:        sourceNames(r.Sources),
			Confidence:     r.Confidence,
			Lift:           r.Lift,
			Explanation:    r.Explanation,
		})
	}
	return out
}

func sourceNames(srcs []rules.Source) []string {
	out := make([]string, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, string(s))
	}
	return out
}
