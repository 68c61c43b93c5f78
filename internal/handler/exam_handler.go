package handler

import (
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/middleware"
	"lingopath/internal/service"
	"lingopath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler serves exam listing, detail, submission and history endpoints.
type ExamHandler struct {
	examService service.ExamService
	validator   *validation.Validator
}

func NewExamHandler(examService service.ExamService, validator *validation.Validator) *ExamHandler {
	return &ExamHandler{
		examService: examService,
		validator:   validator,
	}
}

// GetExams lists all exams.
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamListItem
// @Security BearerAuth
// @Router /exams [get]
func (h *ExamHandler) GetExams(c *fiber.Ctx) error {
	items, err := h.examService.GetExams(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetExamBySlug returns one exam with its questions, without answer keys.
// @Summary Get exam detail
// @Tags exams
// @Produce json
// @Param slug path string true "Exam slug"
// @Success 200 {object} dto.ExamDetailResponse
// @Failure 404 {object} middleware.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /exams/{slug} [get]
func (h *ExamHandler) GetExamBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	resp, err := h.examService.GetExamBySlug(c.Context(), slug)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitExam grades a bulk answer sheet.
// @Summary Submit exam answers
// @Tags exams
// @Accept json
// @Produce json
// @Param slug path string true "Exam slug"
// @Param request body dto.SubmitExamRequest true "Answers keyed by question number"
// @Success 200 {object} dto.ExamSubmitResult
// @Failure 400 {object} middleware.ValidationErrorResponse "Validation failed"
// @Failure 404 {object} middleware.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /exams/{slug}/submit [post]
func (h *ExamHandler) SubmitExam(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	var req dto.SubmitExamRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSubmitExamRequest(&req); len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.examService.SubmitExam(c.Context(), slug, userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSubmissionHistory lists the caller's past attempts at one exam.
// @Summary Get exam submission history
// @Tags exams
// @Produce json
// @Param slug path string true "Exam slug"
// @Success 200 {array} dto.ExamSubmissionHistoryItem
// @Failure 404 {object} middleware.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /exams/{slug}/submissions [get]
func (h *ExamHandler) GetSubmissionHistory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	items, err := h.examService.GetSubmissionHistory(c.Context(), slug, userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}
