package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lutkowo/lutkowo/config"
)

func status(ok bool, configured bool) string {
	switch {
	case !configured:
		return "disabled"
	case ok:
		return "ok"
	default:
		return "down"
	}
}

// Handler reports whether the database and redis answer.
func Handler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbOK := config.DB != nil && config.DB.Ping(ctx) == nil
	redisOK := config.RedisClient != nil && config.RedisClient.Ping(ctx).Err() == nil

	code := http.StatusOK
	if !dbOK {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	response := map[string]interface{}{
		"status":   status(dbOK, true),
		"message":  "Lutkowo Store API",
		"database": status(dbOK, config.DB != nil),
		"redis":    status(redisOK, config.RedisClient != nil),
		"path":     r.URL.Path,
	}

	json.NewEncoder(w).Encode(response)
}
