package repositories

import (
	"context"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponColumns = `code, discount, discount_type, expires_at, min_cart_value, usage_limit, usage_count, one_per_user, is_active, created_at`

type CouponRepository struct {
	db *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

func scanCoupon(row pgx.Row) (models.Coupon, error) {
	var c models.Coupon
	var createdAt *time.Time
	err := row.Scan(&c.Code, &c.Discount, &c.Type, &c.ExpiresAt, &c.MinCartValue, &c.UsageLimit,
		&c.UsageCount, &c.OnePerUser, &c.IsActive, &createdAt)
	if err != nil {
		return c, err
	}
	c.CreatedAt = timeOrNow(createdAt)
	return c, nil
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx, "SELECT "+couponColumns+" FROM coupons WHERE code = $1", code))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	rows, err := r.db.Query(ctx, "SELECT "+couponColumns+" FROM coupons ORDER BY created_at DESC NULLS LAST, code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []models.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) Create(ctx context.Context, c *models.Coupon) error {
	query := `
		INSERT INTO coupons (code, discount, discount_type, expires_at, min_cart_value, usage_limit, usage_count, one_per_user, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9)
	`
	c.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, query, c.Code, c.Discount, c.Type, c.ExpiresAt, c.MinCartValue,
		c.UsageLimit, c.OnePerUser, c.IsActive, c.CreatedAt)
	return err
}

func (r *CouponRepository) SetActive(ctx context.Context, code string, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE coupons SET is_active = $2 WHERE code = $1`, code, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CouponRepository) HasConsumed(ctx context.Context, userID, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_coupons WHERE user_id = $1 AND code = $2)`, userID, code,
	).Scan(&exists)
	return exists, err
}

// Redeem runs in one transaction. The per-user row goes in first so a second
// concurrent apply by the same user fails on the primary key; the counter
// only moves while the usage limit allows it.
func (r *CouponRepository) Redeem(ctx context.Context, code, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if userID != "" {
		tag, err := tx.Exec(ctx, `
			INSERT INTO user_coupons (user_id, code, used_at) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, code) DO NOTHING
		`, userID, code, time.Now())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return models.ErrCouponAlreadyUsed
		}
	}

	tag, err := tx.Exec(ctx, `
		UPDATE coupons SET usage_count = usage_count + 1
		WHERE code = $1 AND (usage_limit IS NULL OR usage_count < usage_limit)
	`, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrCouponExhausted
	}

	return tx.Commit(ctx)
}
