package services

import (
	"context"
	"time"

	"github.com/Lutkowo/lutkowo/models"
)

// The repositories package provides the Postgres implementations of these.

type ProductStore interface {
	List(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Deactivate(ctx context.Context, id string) error
}

type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
	TopLevel(ctx context.Context) ([]models.Category, error)
	Children(ctx context.Context, parentID string) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
}

type CouponStore interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, c *models.Coupon) error
	SetActive(ctx context.Context, code string, active bool) error
	HasConsumed(ctx context.Context, userID, code string) (bool, error)
	// Redeem counts one use and, when userID is set, records it against the
	// user. Both happen or neither does.
	Redeem(ctx context.Context, code, userID string) error
}

type CartStore interface {
	Load(ctx context.Context, userID string) (*models.CartSnapshot, error)
	Save(ctx context.Context, userID string, snap models.CartSnapshot) error
}

type UserStore interface {
	CreateAccount(ctx context.Context, a *models.Account) error
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	FindAccountByID(ctx context.Context, id string) (*models.Account, error)
	SetDisabled(ctx context.Context, id string, disabled bool) error
	GetProfile(ctx context.Context, id string) (*models.User, error)
	CreateProfile(ctx context.Context, u *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, u *models.User) error
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	ListProfiles(ctx context.Context, search string, limit, offset int) ([]models.User, int, error)
}
