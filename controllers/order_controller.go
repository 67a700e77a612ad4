package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
	"shoe-store/models"
)

type OrderController struct {
	api *clients.ShopAPI
}

func NewOrderController(api *clients.ShopAPI) *OrderController {
	return &OrderController{api: api}
}

// @Summary Get my orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/orders [get]
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	orders, err := ctrl.api.GetUserOrders(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to load orders")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders}})
}

// @Summary List orders
// @Description Paginated order list for the admin console
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page path int true "Page number"
// @Param limit path int true "Items per page"
// @Success 200 {object} models.Response
// @Router /api/admin/orders/{page}/{limit} [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	limit, _ := strconv.Atoi(c.Param("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	result, err := ctrl.api.ListOrders(c.Request.Context(), c.GetString("token"), page, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to load orders")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders":     result.Orders,
			"totalPages": result.TotalPages,
			"page":       page,
			"limit":      limit,
		},
	})
}

// @Summary Update order
// @Description Update an order's status and notes
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body models.UpdateOrderRequest true "New status and notes"
// @Success 200 {object} models.Response
// @Router /api/admin/orders/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if err := ctrl.api.UpdateOrder(c.Request.Context(), c.GetString("token"), c.Param("id"), req); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to update order")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
		"data":    gin.H{"id": c.Param("id"), "status": req.Status},
	})
}
