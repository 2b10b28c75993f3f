package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CartTokenHeader = "X-Cart-Token"
	ClientIDHeader  = "X-Client-ID"
)

func cartToken(c *gin.Context) string {
	if token := c.GetHeader(CartTokenHeader); token != "" {
		return token
	}
	return c.Query("cart_token")
}

func clientID(c *gin.Context) string {
	if id := c.GetHeader(ClientIDHeader); id != "" {
		return id
	}
	return c.Query("client_id")
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrCouponNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrSessionEnded):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, models.ErrTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrEmailInUse), errors.Is(err, models.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrWeakPassword),
		errors.Is(err, models.ErrInvalidEmail),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidImage),
		errors.Is(err, models.ErrTooManyImages),
		errors.Is(err, models.ErrInvalidStorageURL),
		errors.Is(err, models.ErrCategoryCycle),
		errors.Is(err, models.ErrInvalidCursor),
		errors.Is(err, models.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrCouponInactive),
		errors.Is(err, models.ErrCouponExpired),
		errors.Is(err, models.ErrCouponExhausted),
		errors.Is(err, models.ErrCouponAlreadyUsed),
		errors.Is(err, models.ErrProductInactive):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
		Error:   err.Error(),
	})
}

func readFormFile(fh *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if maxSize > 0 && fh.Size > maxSize {
		return nil, errors.New("file size exceeds maximum allowed size")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
