package controllers

import (
	"tutorstate/backend/models"
	"tutorstate/backend/stores"
	"tutorstate/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ThemeController struct {
	Theme *stores.ThemeStore
}

func NewThemeController(theme *stores.ThemeStore) *ThemeController {
	return &ThemeController{Theme: theme}
}

type SetThemeRequest struct {
	Theme string `json:"theme" example:"dark" enums:"light,dark"`
}

// GetTheme godoc
// @Summary Get display theme
// @Tags theme
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /theme [get]
func (tc *ThemeController) GetTheme(c *fiber.Ctx) error {
	return tc.respond(c)
}

// ToggleTheme godoc
// @Summary Toggle display theme
// @Tags theme
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /theme/toggle [post]
func (tc *ThemeController) ToggleTheme(c *fiber.Ctx) error {
	tc.Theme.ToggleTheme()
	return tc.respond(c)
}

// SetTheme godoc
// @Summary Set display theme
// @Tags theme
// @Accept json
// @Produce json
// @Param request body SetThemeRequest true "Theme"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /theme [put]
func (tc *ThemeController) SetTheme(c *fiber.Ctx) error {
	var req SetThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	theme, err := models.ParseTheme(req.Theme)
	if err != nil {
		return utils.BadRequest(c, "Theme must be light or dark")
	}

	tc.Theme.SetTheme(theme)
	return tc.respond(c)
}

func (tc *ThemeController) respond(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"theme": tc.Theme.Get(),
	})
}
