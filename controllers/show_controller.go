package controllers

import (
	"net/http"

	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/services"

	"github.com/gin-gonic/gin"
)

type ShowController struct {
	showService *services.ShowService
}

func NewShowController(client repositories.SpreadsheetClient) *ShowController {
	return &ShowController{
		showService: services.NewShowService(client),
	}
}

// @Summary List shows
// @Description Show names for the landing page selector
// @Tags Shows
// @Produce json
// @Success 200 {object} models.Response
// @Router /shows [get]
func (ctrl *ShowController) GetShows(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Shows retrieved successfully",
		Data:    ctrl.showService.ListShows(c.Request.Context()),
	})
}

// @Summary List orderable items
// @Description Items from the Show Inventory sheet
// @Tags Shows
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /inventory [get]
func (ctrl *ShowController) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Inventory retrieved successfully",
		Data:    ctrl.showService.ListInventoryItems(c.Request.Context()),
	})
}

// @Summary List worksheets
// @Description Every tab in the workbook, including per-section sheets
// @Tags Staff - Shows
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /staff/worksheets [get]
func (ctrl *ShowController) GetWorksheets(c *gin.Context) {
	worksheets, err := ctrl.showService.ListWorksheets(c.Request.Context())
	if err != nil {
		remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Worksheets retrieved successfully",
		Data:    worksheets,
	})
}
