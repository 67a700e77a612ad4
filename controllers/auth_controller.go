package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
	"shoe-store/models"
)

type AuthController struct {
	api *clients.ShopAPI
}

func NewAuthController(api *clients.ShopAPI) *AuthController {
	return &AuthController{api: api}
}

// @Summary Login
// @Description Exchange credentials for a bearer token with the shop backend
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	result, err := ctrl.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": remoteMessage(err, "Invalid email or password")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// @Summary Get profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	profile, err := ctrl.api.GetProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success:  false,
			Message:  "Session expired. Please sign in again.",
			Redirect: "/login",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
