package models

import (
	"database/sql"
	"time"
)

// Material is the row model for the materials table.
type Material struct {
	ID          string         `db:"id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ContentHTML string         `db:"content_html"`
	OrderIndex  int            `db:"order_index"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}

// MaterialLike is the row model for the material_likes table;
// (material_id, user_id) is unique.
type MaterialLike struct {
	ID         string    `db:"id"`
	MaterialID string    `db:"material_id"`
	UserID     string    `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`
}

func (MaterialLike) TableName() string {
	return "material_likes"
}
