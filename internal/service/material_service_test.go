package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"lingopath/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) GetAllMaterials(ctx context.Context) ([]domain.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetMaterialBySlug(ctx context.Context, slug string) (*domain.Material, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetLikedMaterialIDs(ctx context.Context, userID string) (map[string]bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockMaterialRepository) IsLiked(ctx context.Context, materialID, userID string) (bool, error) {
	args := m.Called(ctx, materialID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaterialRepository) CreateLike(ctx context.Context, like *domain.MaterialLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockMaterialRepository) DeleteLike(ctx context.Context, materialID, userID string) error {
	args := m.Called(ctx, materialID, userID)
	return args.Error(0)
}

// memoryCache is a minimal domain.Cache for service tests.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.items[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return val, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func TestGetMaterials_MergesLikeFlags(t *testing.T) {
	repo := new(MockMaterialRepository)
	repo.On("GetAllMaterials", mock.Anything).Return([]domain.Material{
		{ID: "m1", Slug: "present-simple", Title: "Present Simple"},
		{ID: "m2", Slug: "articles", Title: "Articles"},
	}, nil)
	repo.On("GetLikedMaterialIDs", mock.Anything, "user-1").Return(map[string]bool{"m2": true}, nil)

	svc := NewMaterialService(repo, newMemoryCache(), time.Minute)

	items, err := svc.GetMaterials(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsLikedByUser)
	assert.True(t, items[1].IsLikedByUser)
}

func TestGetMaterialBySlug_CachesContentNotLikeFlag(t *testing.T) {
	repo := new(MockMaterialRepository)
	repo.On("GetMaterialBySlug", mock.Anything, "present-simple").Return(&domain.Material{
		ID:          "m1",
		Slug:        "present-simple",
		Title:       "Present Simple",
		ContentHTML: "<p>content</p>",
	}, nil).Once()
	repo.On("IsLiked", mock.Anything, "m1", "user-1").Return(false, nil).Once()
	repo.On("IsLiked", mock.Anything, "m1", "user-1").Return(true, nil).Once()

	svc := NewMaterialService(repo, newMemoryCache(), time.Minute)

	first, err := svc.GetMaterialBySlug(context.Background(), "present-simple", "user-1")
	require.NoError(t, err)
	assert.False(t, first.IsLikedByUser)

	// Second read hits the cache for content but re-reads the like flag.
	second, err := svc.GetMaterialBySlug(context.Background(), "present-simple", "user-1")
	require.NoError(t, err)
	assert.True(t, second.IsLikedByUser)
	assert.Equal(t, "<p>content</p>", second.ContentHTML)
	repo.AssertExpectations(t)
}

func TestGetMaterialBySlug_NotFound(t *testing.T) {
	repo := new(MockMaterialRepository)
	repo.On("GetMaterialBySlug", mock.Anything, "missing").Return(nil, nil)

	svc := NewMaterialService(repo, newMemoryCache(), time.Minute)

	_, err := svc.GetMaterialBySlug(context.Background(), "missing", "user-1")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeMaterialNotFound, domainErr.Code)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	repo := new(MockMaterialRepository)
	repo.On("GetMaterialBySlug", mock.Anything, "present-simple").Return(&domain.Material{
		ID:   "m1",
		Slug: "present-simple",
	}, nil)
	repo.On("IsLiked", mock.Anything, "m1", "user-1").Return(false, nil).Once()
	repo.On("CreateLike", mock.Anything, mock.AnythingOfType("*domain.MaterialLike")).Return(nil).Once()
	repo.On("IsLiked", mock.Anything, "m1", "user-1").Return(true, nil).Once()
	repo.On("DeleteLike", mock.Anything, "m1", "user-1").Return(nil).Once()

	svc := NewMaterialService(repo, newMemoryCache(), time.Minute)

	resp, err := svc.ToggleLike(context.Background(), "present-simple", "user-1")
	require.NoError(t, err)
	assert.True(t, resp.Liked)

	resp, err = svc.ToggleLike(context.Background(), "present-simple", "user-1")
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	repo.AssertExpectations(t)
}
