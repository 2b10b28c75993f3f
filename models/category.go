package models

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	ImageURL    string    `json:"image_url,omitempty"`
	ParentID    *string   `json:"parent_id,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil || *c.ParentID == ""
}
