package repositories

import (
	"context"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepository holds the server copy of each user's cart.
type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Load(ctx context.Context, userID string) (*models.CartSnapshot, error) {
	snap := models.CartSnapshot{Owner: userID}
	var updatedAt *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT items, coupon, updated_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&snap.Items, &snap.Coupon, &updatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	snap.UpdatedAt = timeOrNow(updatedAt)
	if snap.Items == nil {
		snap.Items = []models.CartItem{}
	}
	return &snap, nil
}

func (r *CartRepository) Save(ctx context.Context, userID string, snap models.CartSnapshot) error {
	items := snap.Items
	if items == nil {
		items = []models.CartItem{}
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (user_id, items, coupon, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, coupon = EXCLUDED.coupon, updated_at = EXCLUDED.updated_at
	`, userID, items, snap.Coupon, time.Now())
	return err
}
