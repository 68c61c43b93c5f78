package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxMaterialRepository implements domain.MaterialRepository using sqlx.
type sqlxMaterialRepository struct {
	db *sqlx.DB
}

// NewSQLXMaterialRepository creates a new instance of sqlxMaterialRepository.
func NewSQLXMaterialRepository(db *sqlx.DB) domain.MaterialRepository {
	return &sqlxMaterialRepository{db: db}
}

func toDomainMaterial(m *models.Material) *domain.Material {
	if m == nil {
		return nil
	}
	return &domain.Material{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description.String,
		ContentHTML: m.ContentHTML,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetAllMaterials returns materials ordered by order_index.
func (r *sqlxMaterialRepository) GetAllMaterials(ctx context.Context) ([]domain.Material, error) {
	var rows []models.Material
	query := `SELECT * FROM materials ORDER BY order_index`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]domain.Material, 0, len(rows))
	for i := range rows {
		materials = append(materials, *toDomainMaterial(&rows[i]))
	}
	return materials, nil
}

// GetMaterialBySlug returns (nil, nil) when the slug is unknown.
func (r *sqlxMaterialRepository) GetMaterialBySlug(ctx context.Context, slug string) (*domain.Material, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, `SELECT * FROM materials WHERE slug = :slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare material query: %w", err)
	}
	defer stmt.Close()

	var row models.Material
	if err := stmt.GetContext(ctx, &row, map[string]interface{}{"slug": slug}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material by slug: %w", err)
	}
	return toDomainMaterial(&row), nil
}

// GetLikedMaterialIDs returns the set of material IDs the user has liked.
func (r *sqlxMaterialRepository) GetLikedMaterialIDs(ctx context.Context, userID string) (map[string]bool, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, `SELECT material_id FROM material_likes WHERE user_id = :user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare likes query: %w", err)
	}
	defer stmt.Close()

	var ids []string
	if err := stmt.SelectContext(ctx, &ids, map[string]interface{}{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("failed to list liked materials: %w", err)
	}

	liked := make(map[string]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// IsLiked reports whether the (material, user) like row exists.
func (r *sqlxMaterialRepository) IsLiked(ctx context.Context, materialID, userID string) (bool, error) {
	query := `SELECT COUNT(*) AS cnt FROM material_likes
	          WHERE material_id = :material_id AND user_id = :user_id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare like check: %w", err)
	}
	defer stmt.Close()

	var count int
	args := map[string]interface{}{"material_id": materialID, "user_id": userID}
	if err := stmt.GetContext(ctx, &count, args); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// CreateLike inserts the like row for the toggle's "on" half.
func (r *sqlxMaterialRepository) CreateLike(ctx context.Context, like *domain.MaterialLike) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	row := &models.MaterialLike{
		ID:         like.ID,
		MaterialID: like.MaterialID,
		UserID:     like.UserID,
		CreatedAt:  like.CreatedAt,
	}

	query := `INSERT INTO material_likes (id, material_id, user_id, created_at)
	          VALUES (:id, :material_id, :user_id, :created_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// DeleteLike removes the like row for the toggle's "off" half. Deleting a
// row that is already gone is not an error; concurrent toggles are a benign
// race and last write wins.
func (r *sqlxMaterialRepository) DeleteLike(ctx context.Context, materialID, userID string) error {
	query := `DELETE FROM material_likes WHERE material_id = :material_id AND user_id = :user_id`

	args := map[string]interface{}{"material_id": materialID, "user_id": userID}
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
