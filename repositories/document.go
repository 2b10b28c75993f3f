package repositories

import (
	"errors"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Rows written by older imports may carry NULL timestamps; they read as now.
func timeOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now()
	}
	return *t
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func NewID() string {
	return uuid.NewString()
}
