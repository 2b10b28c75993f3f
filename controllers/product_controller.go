package controllers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog   *services.CatalogService
	images    *services.ImageService
	refresher *services.ProductRefresher
	maxUpload int64
}

func NewProductController(catalog *services.CatalogService, images *services.ImageService, refresher *services.ProductRefresher, maxUpload int64) *ProductController {
	return &ProductController{catalog: catalog, images: images, refresher: refresher, maxUpload: maxUpload}
}

func productFilter(c *gin.Context) models.ProductFilter {
	return models.ProductFilter{
		CategoryID: strings.TrimSpace(c.Query("category_id")),
		MinPrice:   queryFloat(c, "min_price"),
		MaxPrice:   queryFloat(c, "max_price"),
		SortBy:     models.ProductSort(strings.TrimSpace(c.Query("sort_by"))),
		SortDir:    strings.ToLower(strings.TrimSpace(c.Query("sort_dir"))),
		Featured:   c.Query("featured") == "true",
	}.Normalize()
}

// @Summary List products
// @Description Keyset paginated list of active products. Pass next_cursor back as cursor for the next page; a cursor taken under a different filter starts over.
// @Tags Products
// @Produce json
// @Param category_id query string false "Category filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_by query string false "Sort column" Enums(created, price, name)
// @Param sort_dir query string false "Sort direction" Enums(asc, desc)
// @Param featured query bool false "Only featured products"
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor from the previous page"
// @Param reset query bool false "Ignore the cursor"
// @Success 200 {object} models.PageResponse{data=[]models.Product}
// @Router /products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	browser := services.NewProductBrowser(ctrl.catalog)
	if cursor := c.Query("cursor"); cursor != "" {
		browser.Resume(cursor)
	}

	products := browser.Fetch(c.Request.Context(), productFilter(c), queryInt(c, "limit", 0), c.Query("reset") == "true")

	resp := models.PageResponse{
		Success:    true,
		Message:    "Products retrieved",
		Data:       products,
		NextCursor: browser.NextCursor(),
		HasMore:    browser.HasMore(),
	}
	if err := browser.Err(); err != nil {
		resp.Message = "Failed to load products"
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search products
// @Description Case-insensitive substring match on name and descriptions over the newest active products
// @Tags Products
// @Produce json
// @Param q query string true "Search term"
// @Param max query int false "Maximum results" default(10)
// @Success 200 {object} models.QueryResponse{data=[]models.Product}
// @Router /products/search [get]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	browser := services.NewProductBrowser(ctrl.catalog)
	results := browser.Search(c.Request.Context(), c.Query("q"), queryInt(c, "max", 0))
	c.JSON(http.StatusOK, queryResponse("Search results", results, browser.Loading(), browser.Err()))
}

// @Summary Featured products
// @Tags Products
// @Produce json
// @Param limit query int false "Maximum results" default(8)
// @Success 200 {object} models.QueryResponse{data=[]models.Product}
// @Router /products/featured [get]
func (ctrl *ProductController) FeaturedProducts(c *gin.Context) {
	products, err := ctrl.catalog.Featured(c.Request.Context(), queryInt(c, "limit", 0))
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, queryResponse("Featured products", products, false, err))
}

// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.QueryResponse{data=models.Product}
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	browser := services.NewProductBrowser(ctrl.catalog)
	product := browser.Get(c.Request.Context(), c.Param("id"))
	if product == nil && browser.Err() == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}
	c.JSON(http.StatusOK, queryResponse("Product retrieved", product, browser.Loading(), browser.Err()))
}

// @Summary Similar products
// @Description Other active products from the same category
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Param limit query int false "Maximum results" default(4)
// @Success 200 {object} models.QueryResponse{data=[]models.Product}
// @Router /products/{id}/similar [get]
func (ctrl *ProductController) SimilarProducts(c *gin.Context) {
	products, err := ctrl.catalog.Similar(c.Request.Context(), c.Param("id"), queryInt(c, "limit", 0))
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, queryResponse("Similar products", products, false, err))
}

// @Summary Live product list
// @Description Server-sent stream of the first catalog page, refreshed periodically while at least one client listens
// @Tags Products
// @Produce text/event-stream
// @Router /products/live [get]
func (ctrl *ProductController) LiveProducts(c *gin.Context) {
	updates, cancel := ctrl.refresher.Watch()
	defer cancel()

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case products, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("products", products)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} models.Response{data=models.Product}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := ctrl.catalog.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create product", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// @Summary Update product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} models.Response{data=models.Product}
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := ctrl.catalog.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update product", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
		Data:    product,
	})
}

// @Summary Delete product
// @Description Hides the product from the storefront
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to delete product", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted",
	})
}

// @Summary Upload product images
// @Description Uploads the images concurrently, attaches them to the product and renders a thumbnail from the first one
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param images formData file true "Image files"
// @Success 200 {object} models.Response{data=models.Product}
// @Router /admin/products/{id}/images [post]
func (ctrl *ProductController) UploadImages(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()

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
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Invalid image " + fh.Filename,
				Error:   err.Error(),
			})
			return
		}
		payloads = append(payloads, data)
	}

	urls, err := ctrl.images.UploadMany(ctx, payloads, productID)
	if err != nil {
		respondError(c, "Failed to upload images", err)
		return
	}

	thumbnail, err := ctrl.images.Thumbnail(ctx, payloads[0], productID)
	if err != nil {
		thumbnail = ""
	}

	product, err := ctrl.catalog.AttachImages(ctx, productID, urls, thumbnail)
	if err != nil {
		for _, url := range append(urls, thumbnail) {
			if url != "" {
				ctrl.images.Delete(ctx, url)
			}
		}
		respondError(c, "Failed to attach images", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Images uploaded",
		Data:    product,
	})
}

func queryResponse(message string, data interface{}, loading bool, err error) models.QueryResponse {
	resp := models.QueryResponse{
		Success: true,
		Message: message,
		Data:    data,
		Loading: loading,
	}
	if err != nil {
		resp.Message = "Failed to load data"
		resp.Error = err.Error()
	}
	return resp
}
