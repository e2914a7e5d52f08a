package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"
)

type GapHandler struct {
	uc       usecase.GapUsecase
	validate *validator.Validate
}

type gapAnalyzeRequest struct {
	UserSkills   []string `json:"user_skills" validate:"max=500,dive,max=200"`
	TargetSkills []string `json:"target_skills" validate:"max=500,dive,max=200"`
}

func NewGapHandler(uc usecase.GapUsecase, validate *validator.Validate) *GapHandler {
	return &GapHandler{uc: uc, validate: validate}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/gap/analyze", h.AnalyzeGap)
}

func (h *GapHandler) AnalyzeGap(c fiber.Ctx) error {
	var req gapAnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid request", nil, err)
	}

	res := h.uc.AnalyzeGap(req.UserSkills, req.TargetSkills)

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GapResponse{
		Matching:       res.Matching,
		Missing:        res.Missing,
		Extra:          res.Extra,
		Coverage:       res.Coverage,
		BaseImportance: res.BaseImportance,
	})
}
