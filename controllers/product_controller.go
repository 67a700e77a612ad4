package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoe-store/clients"
	"shoe-store/models"
)

type ProductController struct {
	api *clients.ShopAPI
}

func NewProductController(api *clients.ShopAPI) *ProductController {
	return &ProductController{api: api}
}

// @Summary List products
// @Description List the catalog, optionally filtered by a case-insensitive search over name and alternate names
// @Tags Products
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} models.Response
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.api.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		products = filterProducts(products, search)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// @Summary Get product
// @Tags Products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{productId} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.api.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.Product true "Product"
// @Success 201 {object} models.Response
// @Router /api/admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product payload"})
		return
	}

	if err := ctrl.api.CreateProduct(c.Request.Context(), c.GetString("token"), product); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to create product")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully"})
}

// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param product body models.Product true "Product"
// @Success 200 {object} models.Response
// @Router /api/admin/products/{productId} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product payload"})
		return
	}

	if err := ctrl.api.UpdateProduct(c.Request.Context(), c.GetString("token"), c.Param("productId"), product); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to update product")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully"})
}

// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/admin/products/{productId} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.api.DeleteProduct(c.Request.Context(), c.GetString("token"), c.Param("productId")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": remoteMessage(err, "Failed to delete product")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

func filterProducts(products []models.Product, search string) []models.Product {
	search = strings.ToLower(search)
	matched := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), search) {
			matched = append(matched, p)
			continue
		}
		for _, alt := range p.AltNames {
			if strings.Contains(strings.ToLower(alt), search) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
