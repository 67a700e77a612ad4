package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
	"shoe-store/models"
	"shoe-store/services"
)

type CartController struct {
	carts *services.CartService
	api   *clients.ShopAPI
}

func NewCartController(carts *services.CartService, api *clients.ShopAPI) *CartController {
	return &CartController{carts: carts, api: api}
}

// @Summary Get cart
// @Description Get the current cart collection for this session
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	key := c.GetString("cart_key")

	items, err := ctrl.carts.GetCart(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	total, err := ctrl.carts.GetTotal(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": items,
			"total": total,
		},
	})
}

// @Summary Add to cart
// @Description Add a product to the cart, merging by (product, size). The catalog price and images are snapshotted at add time.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Product, quantity, and optional size"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	product, err := ctrl.api.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	key := c.GetString("cart_key")
	if err := ctrl.carts.AddToCart(c.Request.Context(), key, product.AsCartProduct(), req.Quantity, req.Size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	count, _ := ctrl.carts.GetCartItemCount(c.Request.Context(), key)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"data":    gin.H{"count": count},
	})
}

// @Summary Adjust cart line
// @Description Change the quantity of an existing line by a signed delta; driving it to zero removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param adjustment body models.CartAdjustRequest true "Line identity and quantity delta"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [patch]
func (ctrl *CartController) AdjustItem(c *gin.Context) {
	var req models.CartAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	key := c.GetString("cart_key")
	items, err := ctrl.carts.GetCart(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	lineKey := models.KeyFor(req.ProductID, req.Size)
	var line *models.CartLineItem
	for i := range items {
		if items[i].Key() == lineKey {
			line = &items[i]
			break
		}
	}
	if line == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	if err := ctrl.carts.AddToCart(c.Request.Context(), key, line.AsCartProduct(), req.Delta, req.Size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	count, _ := ctrl.carts.GetCartItemCount(c.Request.Context(), key)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"data":    gin.H{"count": count},
	})
}

// @Summary Remove cart line
// @Description Remove a line entirely, regardless of its quantity. The UI gates this behind a confirmation modal.
// @Tags Cart
// @Accept json
// @Produce json
// @Param line body models.CartLineRef true "Line identity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.CartLineRef
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	key := c.GetString("cart_key")
	items, err := ctrl.carts.GetCart(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	lineKey := models.KeyFor(req.ProductID, req.Size)
	var line *models.CartLineItem
	for i := range items {
		if items[i].Key() == lineKey {
			line = &items[i]
			break
		}
	}
	if line == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not in cart"})
		return
	}

	// Removal is a decrement by the full quantity.
	if err := ctrl.carts.AddToCart(c.Request.Context(), key, line.AsCartProduct(), -line.Quantity, req.Size); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	count, _ := ctrl.carts.GetCartItemCount(c.Request.Context(), key)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed",
		"data":    gin.H{"count": count},
	})
}

// @Summary Cart item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/count [get]
func (ctrl *CartController) GetCount(c *gin.Context) {
	count, err := ctrl.carts.GetCartItemCount(c.Request.Context(), c.GetString("cart_key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"count": count}})
}

// @Summary Cart total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/total [get]
func (ctrl *CartController) GetTotal(c *gin.Context) {
	total, err := ctrl.carts.GetTotal(c.Request.Context(), c.GetString("cart_key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"total": total}})
}

// @Summary Cart change events
// @Description Server-sent event stream of the cart item count, emitted after every cart mutation in this session
// @Tags Cart
// @Produce text/event-stream
// @Router /api/cart/events [get]
func (ctrl *CartController) Events(c *gin.Context) {
	key := c.GetString("cart_key")

	updates := make(chan int, 8)
	unsubscribe := ctrl.carts.Subscribe(key, func(count int) {
		select {
		case updates <- count:
		default:
		}
	})
	defer unsubscribe()

	if count, err := ctrl.carts.GetCartItemCount(c.Request.Context(), key); err == nil {
		c.SSEvent("cartUpdated", count)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case count := <-updates:
			c.SSEvent("cartUpdated", count)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
