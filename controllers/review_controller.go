package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
)

type ReviewController struct {
	api *clients.ShopAPI
}

func NewReviewController(api *clients.ShopAPI) *ReviewController {
	return &ReviewController{api: api}
}

// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/reviews [get]
func (ctrl *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := ctrl.api.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}
