package handler

import (
	"lingopath/internal/middleware"
	"lingopath/internal/service"
	"lingopath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MaterialHandler serves learning material endpoints.
type MaterialHandler struct {
	materialService service.MaterialService
	validator       *validation.Validator
}

func NewMaterialHandler(materialService service.MaterialService, validator *validation.Validator) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		validator:       validator,
	}
}

// GetMaterials lists all materials with the caller's like flags.
// @Summary List materials
// @Tags materials
// @Produce json
// @Success 200 {array} dto.MaterialListItem
// @Security BearerAuth
// @Router /materials [get]
func (h *MaterialHandler) GetMaterials(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	items, err := h.materialService.GetMaterials(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetMaterialBySlug returns one material with its content.
// @Summary Get material detail
// @Tags materials
// @Produce json
// @Param slug path string true "Material slug"
// @Success 200 {object} dto.MaterialDetailResponse
// @Failure 404 {object} middleware.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{slug} [get]
func (h *MaterialHandler) GetMaterialBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.materialService.GetMaterialBySlug(c.Context(), slug, userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToggleLike flips the caller's like on a material.
// @Summary Toggle material like
// @Tags materials
// @Produce json
// @Param slug path string true "Material slug"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} middleware.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{slug}/like [post]
func (h *MaterialHandler) ToggleLike(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if errs := h.validator.ValidateSlug(slug); len(errs) > 0 {
		return errs
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	resp, err := h.materialService.ToggleLike(c.Context(), slug, userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
