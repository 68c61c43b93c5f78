package handler

import (
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/middleware"
	"lingopath/internal/service"
	"lingopath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MissionHandler serves mission progression endpoints.
type MissionHandler struct {
	missionService service.MissionService
	validator      *validation.Validator
}

func NewMissionHandler(missionService service.MissionService, validator *validation.Validator) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
		validator:      validator,
	}
}

// GetNextMission returns the caller's next incomplete mission and current question.
// @Summary Get next mission
// @Description Returns the lowest-ordered incomplete mission, or a null mission when all are done.
// @Tags missions
// @Produce json
// @Success 200 {object} dto.NextMissionResponse
// @Security BearerAuth
// @Router /missions/next [get]
func (h *MissionHandler) GetNextMission(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.missionService.GetNextMission(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer grades one answer to the caller's current question.
// @Summary Submit mission answer
// @Tags missions
// @Accept json
// @Produce json
// @Param slug path string true "Mission slug"
// @Param request body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ErrorResponse "Question mismatch or invalid input"
// @Failure 404 {object} middleware.ErrorResponse "Mission not found"
// @Failure 409 {object} middleware.ErrorResponse "Mission already completed or concurrent update"
// @Security BearerAuth
// @Router /missions/{slug}/answer [post]
func (h *MissionHandler) SubmitAnswer(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.missionService.SubmitAnswer(c.Context(), slug, userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCompletions lists the caller's completed missions.
// @Summary Get mission completion history
// @Tags missions
// @Produce json
// @Success 200 {array} dto.MissionCompletionItem
// @Security BearerAuth
// @Router /missions/completions [get]
func (h *MissionHandler) GetCompletions(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	items, err := h.missionService.GetCompletions(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}
