package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/gin-gonic/gin"
)

const SessionKey = "session"

// SessionRestorer turns a bearer token into a live session.
type SessionRestorer interface {
	Restore(ctx context.Context, token string) (*models.Session, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		// EventSource cannot set headers
		if token := c.Query("access_token"); token != "" {
			return token, true
		}
		return "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}
	return tokenParts[1], true
}

func AuthMiddleware(auth SessionRestorer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" && c.Query("access_token") == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		session, err := auth.Restore(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session when a valid token is sent and
// lets guests through otherwise.
func OptionalAuthMiddleware(auth SessionRestorer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if session, err := auth.Restore(c.Request.Context(), token); err == nil {
				c.Set(SessionKey, session)
			}
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User session not found",
			})
			c.Abort()
			return
		}

		if !session.User.IsAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
