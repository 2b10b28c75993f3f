package controllers

import (
	"net/http"
	"strconv"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Email or name"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.auth.ListUsers(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve users",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.Response{data=models.User}
// @Router /admin/users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	user, err := ctrl.auth.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "User not found", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User retrieved successfully",
		Data:    user,
	})
}

// @Summary Update user
// @Description Disable or enable an account and grant or revoke admin. Open sessions of the user end.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "Flags"
// @Success 200 {object} models.Response{data=models.User}
// @Router /admin/users/{id} [patch]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := ctrl.auth.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update user", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}
