package controllers

import (
	"net/http"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// @Summary Get all categories
// @Description Get list of all categories ordered by name
// @Tags Categories
// @Produce json
// @Success 200 {object} models.QueryResponse{data=[]models.Category}
// @Router /categories [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	categories := browser.All(c.Request.Context())
	c.JSON(http.StatusOK, queryResponse("Categories retrieved", categories, browser.Loading(), browser.Err()))
}

// @Summary Top-level categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.QueryResponse{data=[]models.Category}
// @Router /categories/top [get]
func (ctrl *CategoryController) GetTopLevel(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	categories := browser.TopLevel(c.Request.Context())
	c.JSON(http.StatusOK, queryResponse("Categories retrieved", categories, browser.Loading(), browser.Err()))
}

// @Summary Category names
// @Description Map of category id to name
// @Tags Categories
// @Produce json
// @Success 200 {object} models.QueryResponse
// @Router /categories/names [get]
func (ctrl *CategoryController) GetNames(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	names := browser.Names(c.Request.Context())
	c.JSON(http.StatusOK, queryResponse("Category names retrieved", names, browser.Loading(), browser.Err()))
}

// @Summary Category by slug
// @Description Returns null data when no category has the slug
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.QueryResponse{data=models.Category}
// @Router /categories/slug/{slug} [get]
func (ctrl *CategoryController) GetBySlug(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	category := browser.GetBySlug(c.Request.Context(), c.Param("slug"))
	c.JSON(http.StatusOK, queryResponse("Category retrieved", category, browser.Loading(), browser.Err()))
}

// @Summary Category by id
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.QueryResponse{data=models.Category}
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetByID(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	category := browser.GetByID(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, queryResponse("Category retrieved", category, browser.Loading(), browser.Err()))
}

// @Summary Child categories
// @Tags Categories
// @Produce json
// @Param id path string true "Parent category ID"
// @Success 200 {object} models.QueryResponse{data=[]models.Category}
// @Router /categories/{id}/children [get]
func (ctrl *CategoryController) GetChildren(c *gin.Context) {
	browser := services.NewCategoryBrowser(ctrl.categories)
	categories := browser.Children(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, queryResponse("Categories retrieved", categories, browser.Loading(), browser.Err()))
}

// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response{data=models.Category}
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := ctrl.categories.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create category", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Category created",
		Data:    category,
	})
}

// @Summary Update category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response{data=models.Category}
// @Router /admin/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := ctrl.categories.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update category", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category updated",
		Data:    category,
	})
}

// @Summary Delete category
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	if err := ctrl.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to delete category", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Category deleted",
	})
}
