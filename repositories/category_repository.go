package repositories

import (
	"context"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, description, slug, COALESCE(image_url, ''), parent_id, sort_order, is_active, created_at, updated_at`

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (models.Category, error) {
	var c models.Category
	var createdAt, updatedAt *time.Time
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.ImageURL, &c.ParentID,
		&c.Order, &c.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return c, err
	}
	c.CreatedAt = timeOrNow(createdAt)
	c.UpdatedAt = timeOrNow(updatedAt)
	return c, nil
}

func (r *CategoryRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	return r.query(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY name")
}

func (r *CategoryRepository) TopLevel(ctx context.Context) ([]models.Category, error) {
	return r.query(ctx, "SELECT "+categoryColumns+" FROM categories WHERE parent_id IS NULL ORDER BY sort_order, name")
}

func (r *CategoryRepository) Children(ctx context.Context, parentID string) ([]models.Category, error) {
	return r.query(ctx, "SELECT "+categoryColumns+" FROM categories WHERE parent_id = $1 ORDER BY sort_order, name", parentID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// GetBySlug returns models.ErrNotFound when no category carries the slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, "SELECT "+categoryColumns+" FROM categories WHERE slug = $1 LIMIT 1", slug))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO categories (id, name, description, slug, image_url, parent_id, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	now := time.Now()
	if c.ID == "" {
		c.ID = NewID()
	}
	c.CreatedAt, c.UpdatedAt = now, now

	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Description, c.Slug, nullableString(c.ImageURL),
		c.ParentID, c.Order, c.IsActive, now, now)
	if isUniqueViolation(err) {
		return models.ErrSlugTaken
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, slug = $4, image_url = $5, parent_id = $6,
			sort_order = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`
	c.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Description, c.Slug, nullableString(c.ImageURL),
		c.ParentID, c.Order, c.IsActive, c.UpdatedAt)
	if isUniqueViolation(err) {
		return models.ErrSlugTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
