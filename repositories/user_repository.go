package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, email, display_name, phone, photo_url, is_admin, newsletter, marketing, created_at, last_login_at`

// UserRepository covers both the credential accounts and the profile
// documents stored next to them.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanProfile(row pgx.Row) (models.User, error) {
	var u models.User
	var createdAt *time.Time
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Phone, &u.PhotoURL, &u.IsAdmin,
		&u.Preferences.Newsletter, &u.Preferences.Marketing, &createdAt, &u.LastLoginAt)
	if err != nil {
		return u, err
	}
	u.CreatedAt = timeOrNow(createdAt)
	return u, nil
}

func (r *UserRepository) CreateAccount(ctx context.Context, a *models.Account) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	a.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, email, password, disabled, created_at) VALUES ($1, $2, $3, false, $4)`,
		a.ID, a.Email, a.Password, a.CreatedAt,
	)
	if isUniqueViolation(err) {
		return models.ErrEmailInUse
	}
	return err
}

func (r *UserRepository) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	a := &models.Account{}
	var createdAt *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, disabled, created_at FROM accounts WHERE email = $1`, email,
	).Scan(&a.ID, &a.Email, &a.Password, &a.Disabled, &createdAt)
	if err != nil {
		return nil, notFound(err)
	}
	a.CreatedAt = timeOrNow(createdAt)
	return a, nil
}

func (r *UserRepository) FindAccountByID(ctx context.Context, id string) (*models.Account, error) {
	a := &models.Account{}
	var createdAt *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, disabled, created_at FROM accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Password, &a.Disabled, &createdAt)
	if err != nil {
		return nil, notFound(err)
	}
	a.CreatedAt = timeOrNow(createdAt)
	return a, nil
}

func (r *UserRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET disabled = $2 WHERE id = $1`, id, disabled)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetProfile(ctx context.Context, id string) (*models.User, error) {
	u, err := scanProfile(r.db.QueryRow(ctx, "SELECT "+profileColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// CreateProfile inserts the profile unless one already exists, in which case
// the stored one is returned.
func (r *UserRepository) CreateProfile(ctx context.Context, u *models.User) (*models.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, display_name, phone, photo_url, is_admin, newsletter, marketing, created_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, u.ID, u.Email, u.DisplayName, u.Phone, u.PhotoURL,
		u.Preferences.Newsletter, u.Preferences.Marketing, u.CreatedAt, u.LastLoginAt)
	if err != nil {
		return nil, err
	}
	return r.GetProfile(ctx, u.ID)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET display_name = $2, phone = $3, photo_url = $4, newsletter = $5, marketing = $6
		WHERE id = $1
	`, u.ID, u.DisplayName, u.Phone, u.PhotoURL, u.Preferences.Newsletter, u.Preferences.Marketing)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_admin = $2 WHERE id = $1`, id, isAdmin)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	return err
}

func (r *UserRepository) ListProfiles(ctx context.Context, search string, limit, offset int) ([]models.User, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = " WHERE email ILIKE $1 OR display_name ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + profileColumns + " FROM users" + where +
		fmt.Sprintf(" ORDER BY created_at DESC NULLS LAST, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanProfile(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}
