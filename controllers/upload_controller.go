package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoe-store/libs"
	"shoe-store/utils"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// @Summary Upload image
// @Description Stage an image locally and push it to object storage, returning the public URL
// @Tags Admin - Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/admin/uploads [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please select a file to upload"})
		return
	}

	localPath, err := utils.StageUploadedFile(c, fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	url, err := libs.UploadToCloudinary(c.Request.Context(), localPath, "products")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"data":    gin.H{"url": url},
	})
}
