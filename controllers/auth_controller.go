package controllers

import (
	"net/http"

	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(client repositories.SpreadsheetClient) *AuthController {
	return &AuthController{
		authService: services.NewAuthService(client),
	}
}

// @Summary Exhibitor login
// @Description Open a booth session with a show and booth number
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Show and booth number"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Please enter both your show and booth number to continue",
			Error:   err.Error(),
		})
		return
	}

	resp, err := ctrl.authService.LoginExhibitor(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Welcome " + resp.ExhibitorName,
		Data:    resp,
	})
}

// @Summary Staff login
// @Description Open a staff session for the order tracking surface
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.StaffLoginRequest true "Staff credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/staff/login [post]
func (ctrl *AuthController) StaffLogin(c *gin.Context) {
	var req models.StaffLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Username and password are required",
			Error:   err.Error(),
		})
		return
	}

	resp, err := ctrl.authService.LoginStaff(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged in",
		Data:    resp,
	})
}
