package controllers

import (
	"net/http"

	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type CouponController struct {
	coupons *services.CouponService
}

func NewCouponController(coupons *services.CouponService) *CouponController {
	return &CouponController{coupons: coupons}
}

// @Summary Check coupon
// @Description Validates a code without redeeming it
// @Tags Coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} models.Response{data=models.Coupon}
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /coupons/{code} [get]
func (ctrl *CouponController) CheckCoupon(c *gin.Context) {
	coupon, err := ctrl.coupons.Validate(c.Request.Context(), c.Param("code"), middleware.CurrentSession(c).UserID())
	if err != nil {
		respondError(c, "Coupon not valid", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupon valid",
		Data:    coupon,
	})
}

// @Summary List coupons
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Coupon}
// @Router /admin/coupons [get]
func (ctrl *CouponController) ListCoupons(c *gin.Context) {
	coupons, err := ctrl.coupons.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to get coupons", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupons retrieved",
		Data:    coupons,
	})
}

// @Summary Create coupon
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CouponRequest true "Coupon"
// @Success 201 {object} models.Response{data=models.Coupon}
// @Router /admin/coupons [post]
func (ctrl *CouponController) CreateCoupon(c *gin.Context) {
	var req models.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	coupon, err := ctrl.coupons.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create coupon",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Coupon created",
		Data:    coupon,
	})
}

type couponStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// @Summary Activate or deactivate coupon
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Param request body couponStatusRequest true "Status"
// @Success 200 {object} models.Response
// @Router /admin/coupons/{code} [patch]
func (ctrl *CouponController) SetCouponStatus(c *gin.Context) {
	var req couponStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ctrl.coupons.SetActive(c.Request.Context(), c.Param("code"), req.IsActive); err != nil {
		respondError(c, "Failed to update coupon", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Coupon updated",
	})
}
