package controllers

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/services"
	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 25 * time.Second

type AuthController struct {
	auth  *services.AuthService
	carts *services.CartService
}

func NewAuthController(auth *services.AuthService, carts *services.CartService) *AuthController {
	return &AuthController{auth: auth, carts: carts}
}

func (ctrl *AuthController) loginResponse(c *gin.Context, session *models.Session) models.LoginResponse {
	resp := models.LoginResponse{Token: session.Token, User: session.User}

	token := cartToken(c)
	if token == "" {
		return resp
	}
	cart, err := ctrl.carts.Do(c.Request.Context(), token, clientID(c), session, nil)
	if err != nil {
		log.Printf("[Auth] cart reconcile on sign in failed: %v", err)
		return resp
	}
	view := cart.View()
	resp.Cart = &view
	c.Header(CartTokenHeader, cart.Token())
	return resp
}

// @Summary Register
// @Description Create an account and sign in. Sends X-Cart-Token to carry the guest cart over.
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := ctrl.auth.SignUp(c.Request.Context(), req)
	if err != nil {
		respondError(c, services.UserMessage(err), err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    ctrl.loginResponse(c, session),
	})
}

// @Summary Login
// @Description Sign in with email and password. Sends X-Cart-Token to reconcile the device cart.
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Device cart token"
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := ctrl.auth.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, services.UserMessage(err), err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    ctrl.loginResponse(c, session),
	})
}

// @Summary Logout
// @Description End the current session and clear the device cart
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param X-Cart-Token header string false "Device cart token"
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if err := ctrl.auth.SignOut(c.Request.Context(), session); err != nil {
		respondError(c, "Failed to sign out", err)
		return
	}

	if err := ctrl.carts.DetachDevice(c.Request.Context(), cartToken(c)); err != nil {
		log.Printf("[Auth] clearing device cart failed: %v", err)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}

// @Summary Current session
// @Description Guests and ended sessions get state signed_out
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Session}
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	current := middleware.CurrentSession(c)
	if current == nil {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Not signed in",
			Data:    models.Session{State: models.SignedOut},
		})
		return
	}

	session := *current
	session.Token = ""
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session retrieved",
		Data:    session,
	})
}

// @Summary Get profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.User}
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	session := middleware.CurrentSession(c)
	user, err := ctrl.auth.GetUser(c.Request.Context(), session.UserID())
	if err != nil {
		respondError(c, "Failed to get profile", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved",
		Data:    user,
	})
}

// @Summary Update profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response{data=models.User}
// @Router /auth/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := ctrl.auth.UpdateProfile(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		respondError(c, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated",
		Data:    user,
	})
}

// @Summary Session events
// @Description Server-sent stream of sign-in, sign-out and profile events for the current user
// @Tags Auth
// @Produce text/event-stream
// @Security BearerAuth
// @Param access_token query string false "Bearer token for clients that cannot set headers"
// @Router /auth/session/events [get]
func (ctrl *AuthController) SessionEvents(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	events, cancel := ctrl.auth.Watch(ctx, session.UserID())
	defer cancel()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.SSEvent("ready", gin.H{"session_id": session.ID})
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			// this stream's own session ended elsewhere
			if ev.Type == models.SessionEventSignedOut && (ev.SessionID == "" || ev.SessionID == session.ID) {
				return false
			}
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-ctx.Done():
			return false
		}
	})
}
