package service

import (
	"context"
	"encoding/json"
	"time"

	"lingopath/internal/cache"
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"
	"lingopath/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaterialService defines the interface for learning material operations.
type MaterialService interface {
	GetMaterials(ctx context.Context, userID string) ([]dto.MaterialListItem, error)
	GetMaterialBySlug(ctx context.Context, slug, userID string) (*dto.MaterialDetailResponse, error)
	ToggleLike(ctx context.Context, slug, userID string) (*dto.LikeResponse, error)
}

type materialServiceImpl struct {
	materialRepo domain.MaterialRepository
	cache        domain.Cache
	contentTTL   time.Duration
}

// NewMaterialService creates a new instance of MaterialService.
func NewMaterialService(materialRepo domain.MaterialRepository, cacheClient domain.Cache, contentTTL time.Duration) MaterialService {
	return &materialServiceImpl{
		materialRepo: materialRepo,
		cache:        cacheClient,
		contentTTL:   contentTTL,
	}
}

// GetMaterials lists all materials in display order, each flagged with
// whether the requesting user has liked it. The material rows and the like
// set are independent queries, so they run concurrently.
func (s *materialServiceImpl) GetMaterials(ctx context.Context, userID string) ([]dto.MaterialListItem, error) {
	var (
		materials []domain.Material
		likedIDs  map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		materials, err = s.materialRepo.GetAllMaterials(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		likedIDs, err = s.materialRepo.GetLikedMaterialIDs(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list materials", err)
	}

	items := make([]dto.MaterialListItem, 0, len(materials))
	for _, m := range materials {
		items = append(items, dto.MaterialListItem{
			ID:            m.ID,
			Slug:          m.Slug,
			Title:         m.Title,
			Description:   m.Description,
			IsLikedByUser: likedIDs[m.ID],
		})
	}
	return items, nil
}

// GetMaterialBySlug returns one material with the live like flag for the
// requesting user. Only the shared content is cached; the per-user flag is
// always read fresh.
func (s *materialServiceImpl) GetMaterialBySlug(ctx context.Context, slug, userID string) (*dto.MaterialDetailResponse, error) {
	material, err := s.getMaterialContent(ctx, slug)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.NewMaterialNotFoundError(slug)
	}

	liked, err := s.materialRepo.IsLiked(ctx, material.ID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to check like state", err)
	}

	return &dto.MaterialDetailResponse{
		ID:            material.ID,
		Slug:          material.Slug,
		Title:         material.Title,
		Description:   material.Description,
		ContentHTML:   material.ContentHTML,
		IsLikedByUser: liked,
	}, nil
}

// ToggleLike flips the (material, user) like and reports the resulting state.
func (s *materialServiceImpl) ToggleLike(ctx context.Context, slug, userID string) (*dto.LikeResponse, error) {
	material, err := s.materialRepo.GetMaterialBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load material", err)
	}
	if material == nil {
		return nil, domain.NewMaterialNotFoundError(slug)
	}

	liked, err := s.materialRepo.IsLiked(ctx, material.ID, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to check like state", err)
	}

	if liked {
		if err := s.materialRepo.DeleteLike(ctx, material.ID, userID); err != nil {
			return nil, domain.NewInternalError("failed to remove like", err)
		}
		return &dto.LikeResponse{Liked: false}, nil
	}

	like := &domain.MaterialLike{
		ID:         util.NewULID(),
		MaterialID: material.ID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	if err := s.materialRepo.CreateLike(ctx, like); err != nil {
		return nil, domain.NewInternalError("failed to record like", err)
	}
	return &dto.LikeResponse{Liked: true}, nil
}

func (s *materialServiceImpl) getMaterialContent(ctx context.Context, slug string) (*domain.Material, error) {
	appLogger := logger.Get()
	cacheKey := cache.GenerateCacheKey("material", "detail", slug)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var material domain.Material
		if err := json.Unmarshal([]byte(cached), &material); err == nil {
			return &material, nil
		}
		appLogger.Warn("Failed to unmarshal cached material", zap.String("key", cacheKey), zap.Error(err))
	} else if err != domain.ErrCacheMiss {
		appLogger.Warn("Cache get failed for material", zap.String("key", cacheKey), zap.Error(err))
	}

	material, err := s.materialRepo.GetMaterialBySlug(ctx, slug)
	if err != nil {
		return nil, domain.NewInternalError("failed to load material", err)
	}
	if material == nil {
		return nil, nil
	}

	if data, err := json.Marshal(material); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), s.contentTTL); err != nil {
			appLogger.Warn("Cache set failed for material", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return material, nil
}
