package controllers

import (
	"errors"
	"net/http"

	"exhibitor-portal/middleware"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(client repositories.SpreadsheetClient, email *models.EmailService) *OrderController {
	return &OrderController{
		orderService: services.NewOrderService(client, email),
	}
}

// remoteError converts repository failures into the user-facing shape: the
// workbook being unreachable or a row operation failing is never the
// user's fault, and the raw API error stays out of the response.
func remoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrWorksheetNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "The requested worksheet does not exist",
		})
	case errors.Is(err, repositories.ErrConnection), errors.Is(err, repositories.ErrRemoteIO):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "There was an error reaching the order sheet. Please try again",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Something went wrong. Please try again",
		})
	}
}

// @Summary List my orders
// @Description Orders for the session's booth, short-TTL cached
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	orders, err := ctrl.orderService.ListBoothOrders(c.Request.Context(), session)
	if err != nil {
		remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Place a new order
// @Description Appends the order to the master sheet and, best effort, the section sheet
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	var req models.PlaceOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Please select an item and a quantity of at least 1",
			Error:   err.Error(),
		})
		return
	}

	order, result, err := ctrl.orderService.PlaceOrder(c.Request.Context(), session, req)
	if err != nil {
		remoteError(c, err)
		return
	}

	message := "Order placed successfully"
	if result.SectionError != "" {
		message = "Order placed; the section sheet copy failed and will need a manual fix"
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"order":   order,
			"section": result,
		},
	})
}

// @Summary Cancel an order
// @Description Deletes the booth's order row, section sheet first
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.DeleteOrderRequest true "Order natural key"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	var req models.DeleteOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Item is required",
			Error:   err.Error(),
		})
		return
	}

	deleted, err := ctrl.orderService.DeleteOrder(c.Request.Context(), session, req)
	if err != nil {
		remoteError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "No matching order was found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order deleted",
	})
}

// @Summary Refresh cached data
// @Description Clears this booth's cached orders and the shared catalog
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /refresh [post]
func (ctrl *OrderController) Refresh(c *gin.Context) {
	session, _ := middleware.GetSession(c)
	ctrl.orderService.Refresh(c.Request.Context(), session)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Data refreshed",
	})
}

// @Summary List orders on a worksheet
// @Description Staff view over any worksheet, master sheet by default
// @Tags Staff - Orders
// @Security BearerAuth
// @Produce json
// @Param worksheet query string false "Worksheet name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /staff/orders [get]
func (ctrl *OrderController) GetWorksheetOrders(c *gin.Context) {
	orders, err := ctrl.orderService.ListWorksheetOrders(c.Request.Context(), c.Query("worksheet"))
	if err != nil {
		remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// @Summary Find one order
// @Description Looks an order up by its (booth, item, color) natural key
// @Tags Staff - Orders
// @Security BearerAuth
// @Produce json
// @Param worksheet query string false "Worksheet name"
// @Param booth query string true "Booth number"
// @Param item query string true "Item"
// @Param color query string false "Color"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /staff/orders/find [get]
func (ctrl *OrderController) FindOrder(c *gin.Context) {
	worksheet := c.DefaultQuery("worksheet", repositories.MasterWorksheet)

	order, err := ctrl.orderService.FindOrder(c.Request.Context(), worksheet,
		c.Query("booth"), c.Query("item"), c.Query("color"))
	if err != nil {
		remoteError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "No matching order was found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order found",
		Data:    order,
	})
}

// @Summary Update order status
// @Description Rewrites Status, User, Date and Hour on the natural-key row
// @Tags Staff - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateStatusRequest true "Status update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /staff/orders/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	session, _ := middleware.GetSession(c)

	var req models.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Worksheet, booth number, item and status are required",
			Error:   err.Error(),
		})
		return
	}

	updated, err := ctrl.orderService.UpdateStatus(c.Request.Context(), session, req)
	if err != nil {
		remoteError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "No matching order was found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Status updated",
	})
}
