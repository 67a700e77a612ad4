package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
	"shoe-store/models"
	"shoe-store/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	api      *clients.ShopAPI
}

func NewCheckoutController(checkout *services.CheckoutService, api *clients.ShopAPI) *CheckoutController {
	return &CheckoutController{checkout: checkout, api: api}
}

// @Summary Checkout prefill
// @Description Contact fields seeded from the account profile for the checkout form
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/checkout [get]
func (ctrl *CheckoutController) Prefill(c *gin.Context) {
	profile, err := ctrl.api.GetProfile(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success:  false,
			Message:  "Session expired. Please sign in again.",
			Redirect: "/login",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": models.CheckoutPrefill{
			Email: profile.Email,
			Name:  profile.FullName(),
			Phone: profile.ContactPhone(),
		},
	})
}

// @Summary Place order
// @Description Validate the cart snapshot and shipping/payment details, submit the order to the shop backend, and clear the cart on success
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param order body models.CheckoutRequest true "Shipping and payment details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	order, err := ctrl.checkout.PlaceOrder(c.Request.Context(), c.GetString("token"), c.GetString("cart_key"), req)
	if err != nil {
		var validationErr *services.ValidationError
		var apiErr *clients.APIError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		case errors.Is(err, services.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success:  false,
				Message:  "Session expired. Please sign in again.",
				Redirect: "/login",
			})
		case errors.As(err, &apiErr):
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": apiErr.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to place order."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully.",
		"data": gin.H{
			"total":         order.Total,
			"itemCount":     len(order.Items),
			"paymentMethod": order.PaymentMethod,
		},
	})
}
