package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"
)

// ModelScoresHandler exposes the raw ensemble verdicts for diagnostic
// use.
type ModelScoresHandler struct {
	uc       usecase.ModelScoresUsecase
	validate *validator.Validate
}

type modelScoresRequest struct {
	UserSkills   []string `json:"user_skills" validate:"max=500,dive,max=200"`
	TargetSkills []string `json:"target_skills" validate:"max=500,dive,max=200"`
}

func NewModelScoresHandler(uc usecase.ModelScoresUsecase, validate *validator.Validate) *ModelScoresHandler {
	return &ModelScoresHandler{uc: uc, validate: validate}
}

func (h *ModelScoresHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/model-scores", h.SkillModelScores)
}

func (h *ModelScoresHandler) SkillModelScores(c fiber.Ctx) error {
	var req modelScoresRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid request", nil, err)
	}

	scores := h.uc.SkillModelScores(req.UserSkills, req.TargetSkills)

	out := make(map[string]dto.ScoreDetailResponse, len(scores))
	for skill, d := range scores {
		perSource := make(map[string]dto.SourceSignalResponse, len(d.PerSource))
		for src, sig := range d.PerSource {
			perSource[string(src)] = dto.SourceSignalResponse{
				ConfidenceMean: sig.ConfidenceMean,
				LiftMean:       sig.LiftMean,
				RuleCount:      sig.RuleCount,
			}
		}
		out[skill] = dto.ScoreDetailResponse{
			PerSource:      perSource,
			ModelScore:     d.ModelScore,
			BestConfidence: d.BestConfidence,
			BestSource:     string(d.BestSource),
			Sources:        sourceNames(d.Sources),
			TotalSignals:   d.TotalSignals,
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
