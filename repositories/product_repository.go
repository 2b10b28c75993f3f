package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, short_description, price, currency,
	COALESCE(category_id, ''), images, thumbnail_url, available_quantity, metadata, tags,
	featured, is_active, created_at, updated_at`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	var createdAt, updatedAt *time.Time
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ShortDescription, &p.Price, &p.Currency,
		&p.CategoryID, &p.Images, &p.ThumbnailURL, &p.AvailableQuantity, &p.Metadata, &p.Tags,
		&p.Featured, &p.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return p, err
	}
	p.CreatedAt = timeOrNow(createdAt)
	p.UpdatedAt = timeOrNow(updatedAt)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

func sortColumn(s models.ProductSort) string {
	switch s {
	case models.SortByPrice:
		return "price"
	case models.SortByName:
		return "name"
	default:
		return "created_at"
	}
}

func cursorValue(s models.ProductSort, c *models.ProductCursor) interface{} {
	switch s {
	case models.SortByPrice:
		return c.Price
	case models.SortByName:
		return c.Name
	default:
		return c.CreatedAt
	}
}

// listQuery builds the keyset paginated listing. The cursor is compared on
// the sort column with id as the tie breaker so pages never overlap. Every
// sort column is NOT NULL, so the row comparison is total.
func listQuery(q models.ProductQuery) (string, []interface{}) {
	filter := q.ProductFilter.Normalize()

	query := "SELECT " + productColumns + " FROM products WHERE 1=1"
	args := []interface{}{}
	paramIndex := 1

	if q.ActiveOnly {
		query += " AND is_active = true"
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", paramIndex)
		args = append(args, filter.CategoryID)
		paramIndex++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, *filter.MinPrice)
		paramIndex++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, *filter.MaxPrice)
		paramIndex++
	}
	if filter.Featured {
		query += " AND featured = true"
	}
	if q.ExcludeID != "" {
		query += fmt.Sprintf(" AND id <> $%d", paramIndex)
		args = append(args, q.ExcludeID)
		paramIndex++
	}

	col := sortColumn(filter.SortBy)
	dir := strings.ToUpper(filter.SortDir)
	if q.After != nil {
		op := ">"
		if filter.SortDir == models.SortDesc {
			op = "<"
		}
		query += fmt.Sprintf(" AND (%s, id) %s ($%d, $%d)", col, op, paramIndex, paramIndex+1)
		args = append(args, cursorValue(filter.SortBy, q.After), q.After.ID)
		paramIndex += 2
	}

	query += fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramIndex)
		args = append(args, q.Limit)
	}
	return query, args
}

func (r *ProductRepository) List(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	query, args := listQuery(q)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	row := r.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, short_description, price, currency, category_id,
			images, thumbnail_url, available_quantity, metadata, tags, featured, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	now := time.Now()
	if p.ID == "" {
		p.ID = NewID()
	}
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ShortDescription, p.Price, p.Currency, nullableString(p.CategoryID),
		p.Images, p.ThumbnailURL, p.AvailableQuantity, p.Metadata, p.Tags, p.Featured, p.IsActive, now, now,
	)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, short_description = $4, price = $5, currency = $6,
			category_id = $7, images = $8, thumbnail_url = $9, available_quantity = $10, metadata = $11,
			tags = $12, featured = $13, is_active = $14, updated_at = $15
		WHERE id = $1
	`
	p.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ShortDescription, p.Price, p.Currency, nullableString(p.CategoryID),
		p.Images, p.ThumbnailURL, p.AvailableQuantity, p.Metadata, p.Tags, p.Featured, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Deactivate hides the product from listings; carts that already hold it keep
// their snapshot.
func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_active = false, updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
