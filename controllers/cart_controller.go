package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// run applies fn to the device cart and answers with the resulting view.
func (ctrl *CartController) run(c *gin.Context, status int, message string, fn func(m *services.CartManager) error) {
	cart, err := ctrl.carts.Do(c.Request.Context(), cartToken(c), clientID(c), middleware.CurrentSession(c), fn)
	if cart != nil {
		c.Header(CartTokenHeader, cart.Token())
	}
	if err != nil {
		respondError(c, "Cart update failed", err)
		return
	}

	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    cart.View(),
	})
}

// @Summary Get cart
// @Description Returns the device cart, reconciling it with the account cart when signed in. A new X-Cart-Token is issued when none is sent.
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ctrl.run(c, http.StatusOK, "Cart retrieved", nil)
}

// @Summary Add item
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctrl.run(c, http.StatusOK, "Item added to cart", func(m *services.CartManager) error {
		return m.Add(c.Request.Context(), req.ProductID, req.Quantity, req.Attributes)
	})
}

// @Summary Update item quantity
// @Description A quantity below 1 removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param id path string true "Line item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctrl.run(c, http.StatusOK, "Cart updated", func(m *services.CartManager) error {
		return m.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	})
}

// @Summary Remove item
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param id path string true "Line item ID"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	ctrl.run(c, http.StatusOK, "Item removed", func(m *services.CartManager) error {
		return m.Remove(c.Request.Context(), c.Param("id"))
	})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.run(c, http.StatusOK, "Cart cleared", func(m *services.CartManager) error {
		return m.Clear(c.Request.Context())
	})
}

// @Summary Apply coupon
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param request body models.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} models.Response{data=models.CartView}
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/coupon [post]
func (ctrl *CartController) ApplyCoupon(c *gin.Context) {
	var req models.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctrl.run(c, http.StatusOK, "Coupon applied", func(m *services.CartManager) error {
		return m.ApplyCoupon(c.Request.Context(), req.Code)
	})
}

// @Summary Remove coupon
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/coupon [delete]
func (ctrl *CartController) RemoveCoupon(c *gin.Context) {
	ctrl.run(c, http.StatusOK, "Coupon removed", func(m *services.CartManager) error {
		return m.RemoveCoupon(c.Request.Context())
	})
}

// @Summary Sync cart
// @Description Forces a reconciliation of the device cart with the account cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param X-Cart-Token header string false "Device cart token"
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart/sync [post]
func (ctrl *CartController) SyncCart(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctrl.run(c, http.StatusOK, "Cart synced", func(m *services.CartManager) error {
		return m.Reconcile(c.Request.Context(), session.UserID())
	})
}

// @Summary Checkout preview
// @Description Prices the cart as a pending order without storing it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param request body models.CheckoutPreviewRequest true "Checkout details"
// @Success 200 {object} models.Response{data=models.Order}
// @Router /cart/checkout/preview [post]
func (ctrl *CartController) CheckoutPreview(c *gin.Context) {
	var req models.CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var order *models.Order
	cart, err := ctrl.carts.Do(c.Request.Context(), cartToken(c), clientID(c), middleware.CurrentSession(c), func(m *services.CartManager) error {
		var err error
		order, err = m.CheckoutPreview(req)
		return err
	})
	if cart != nil {
		c.Header(CartTokenHeader, cart.Token())
	}
	if err != nil {
		respondError(c, "Checkout preview failed", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout preview",
		Data:    order,
	})
}

// @Summary Cart events
// @Description Server-sent stream of cart snapshots for every client of the device. Clients skip messages whose origin is their own X-Client-ID.
// @Tags Cart
// @Produce text/event-stream
// @Param cart_token query string true "Device cart token"
// @Router /cart/events [get]
func (ctrl *CartController) CartEvents(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Cart token required",
		})
		return
	}

	ctx := c.Request.Context()
	messages, cancel := ctrl.carts.Events(ctx, token)
	defer cancel()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent(msg.Type, msg)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-ctx.Done():
			return false
		}
	})
}
