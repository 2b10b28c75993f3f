package controllers

import (
	"net/http"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	images    *services.ImageService
	maxUpload int64
}

func NewUploadController(images *services.ImageService, maxUpload int64) *UploadController {
	return &UploadController{images: images, maxUpload: maxUpload}
}

// @Summary Upload image
// @Description Stores one image under products/ and returns its public URL
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param path formData string false "Destination path"
// @Success 201 {object} models.Response
// @Router /admin/uploads [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "No image uploaded",
			Error:   err.Error(),
		})
		return
	}

	data, err := readFormFile(fh, ctrl.maxUpload)
	if err != nil {
		badRequest(c, err)
		return
	}

	url, err := ctrl.images.Upload(c.Request.Context(), data, c.PostForm("path"))
	if err != nil {
		respondError(c, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Image uploaded",
		Data:    gin.H{"url": url},
	})
}

// @Summary Upload images
// @Description Uploads all images concurrently; URLs come back in the order sent
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Param product_id formData string false "Product to namespace the images under"
// @Success 201 {object} models.Response
// @Router /admin/uploads/batch [post]
func (ctrl *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "No images uploaded",
		})
		return
	}

	payloads := make([][]byte, 0, len(form.File["images"]))
	for _, fh := range form.File["images"] {
		data, err := readFormFile(fh, ctrl.maxUpload)
		if err != nil {
			badRequest(c, err)
			return
		}
		payloads = append(payloads, data)
	}

	urls, err := ctrl.images.UploadMany(c.Request.Context(), payloads, c.PostForm("product_id"))
	if err != nil {
		respondError(c, "Failed to upload images", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Images uploaded",
		Data:    gin.H{"urls": urls},
	})
}

type deleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// @Summary Delete image
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body deleteImageRequest true "Image URL"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/uploads [delete]
func (ctrl *UploadController) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ctrl.images.Delete(c.Request.Context(), req.URL); err != nil {
		respondError(c, "Failed to delete image", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Image deleted",
	})
}
