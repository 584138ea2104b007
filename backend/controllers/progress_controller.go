package controllers

import (
	"tutorstate/backend/models"
	"tutorstate/backend/stores"
	"tutorstate/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Progress *stores.ProgressStore
}

func NewProgressController(progress *stores.ProgressStore) *ProgressController {
	return &ProgressController{Progress: progress}
}

type CompleteModuleRequest struct {
	Completed *bool `json:"completed" example:"true"`
}

// GetModules godoc
// @Summary List tutorial modules
// @Description Returns the ordered module catalog
// @Tags modules
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /modules [get]
func (pc *ProgressController) GetModules(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.Modules())
}

// GetProgress godoc
// @Summary Get module progress
// @Description Returns completed flag and last visit time for every module
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, pc.Progress.Get())
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Returns totals over the module catalog
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, pc.Progress.Overview())
}

// MarkVisited godoc
// @Summary Mark module visited
// @Tags progress
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /progress/{id}/visit [post]
func (pc *ProgressController) MarkVisited(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := models.FindModule(id); !ok {
		return utils.NotFound(c, "Module not found")
	}

	pc.Progress.MarkVisited(id)
	return utils.Success(c, fiber.StatusOK, pc.Progress.Get())
}

// MarkCompleted godoc
// @Summary Mark module completed
// @Description Sets the completed flag (default true) and stamps the visit time
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param request body CompleteModuleRequest false "Completion flag"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /progress/{id}/complete [post]
func (pc *ProgressController) MarkCompleted(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := models.FindModule(id); !ok {
		return utils.NotFound(c, "Module not found")
	}

	var req CompleteModuleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	pc.Progress.MarkCompleted(id, completed)
	return utils.Success(c, fiber.StatusOK, pc.Progress.Get())
}

// ResetProgress godoc
// @Summary Reset progress
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /progress/reset [post]
func (pc *ProgressController) ResetProgress(c *fiber.Ctx) error {
	pc.Progress.Reset()
	return utils.Success(c, fiber.StatusOK, pc.Progress.Get())
}
