package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
)

type UserController struct {
	api *clients.ShopAPI
}

func NewUserController(api *clients.ShopAPI) *UserController {
	return &UserController{api: api}
}

// @Summary List users
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.api.ListUsers(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to load users")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}
