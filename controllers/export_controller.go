package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ExportController struct {
	orderService *services.OrderService
}

func NewExportController(client repositories.SpreadsheetClient) *ExportController {
	return &ExportController{
		orderService: services.NewOrderService(client, nil),
	}
}

var exportHeader = []string{
	"Booth #", "Section", "Exhibitor Name", "Item", "Color", "Quantity",
	"Date", "Hour", "Status", "Type", "Secondary Quantity", "Comments", "User",
}

// @Summary Export orders as xlsx
// @Description Downloads one worksheet's orders as an Excel file
// @Tags Staff - Orders
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param worksheet query string false "Worksheet name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /staff/orders/export [get]
func (ctrl *ExportController) ExportOrders(c *gin.Context) {
	worksheet := c.DefaultQuery("worksheet", repositories.MasterWorksheet)

	orders, err := ctrl.orderService.ListWorksheetOrders(c.Request.Context(), worksheet)
	if err != nil {
		remoteError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for i, order := range orders {
		row := []interface{}{
			order.BoothNumber, order.Section, order.ExhibitorName, order.Item,
			order.Color, order.Quantity, order.Date, order.Hour, order.Status,
			order.Type, order.SecondaryQty, order.Comments, order.User,
		}
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to build the export file",
		})
	}
}
