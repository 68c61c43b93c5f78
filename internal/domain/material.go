package domain

import (
	"context"
	"time"
)

// Material is a static lesson page with a per-user like toggle.
type Material struct {
	ID          string
	Slug        string
	Title       string
	Description string
	ContentHTML string
	OrderIndex  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MaterialLike is the unique (material, user) pair behind the toggle.
type MaterialLike struct {
	ID         string
	MaterialID string
	UserID     string
	CreatedAt  time.Time
}

// MaterialRepository defines the interface for material and like persistence.
type MaterialRepository interface {
	GetAllMaterials(ctx context.Context) ([]Material, error)
	GetMaterialBySlug(ctx context.Context, slug string) (*Material, error)

	// GetLikedMaterialIDs returns the set of material IDs the user has liked.
	GetLikedMaterialIDs(ctx context.Context, userID string) (map[string]bool, error)
	IsLiked(ctx context.Context, materialID, userID string) (bool, error)
	CreateLike(ctx context.Context, like *MaterialLike) error
	DeleteLike(ctx context.Context, materialID, userID string) error
}
