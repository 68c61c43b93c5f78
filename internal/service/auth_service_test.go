package service

import (
	"context"
	"os"
	"testing"
	"time"

	"lingopath/internal/config"
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestMain initializes the logger for all tests in this package.
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "development"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey: "0123456789abcdef0123456789abcdef",
			TokenTTL:  168 * time.Hour,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	// The issued token must be accepted by the same service.
	claims, err := svc.ValidateJWT(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "new@example.com", claims.Email)

	// The stored hash must verify the original password.
	created := repo.Calls[1].Arguments.Get(1).(*domain.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: "existing", Email: "taken@example.com"}, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
		Name:     "Someone",
	})
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeEmailTaken, domainErr.Code)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Name:         "User",
	}, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidCredentials, domainErr.Code)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, unknownErr)
	domainErr, ok := unknownErr.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidCredentials, domainErr.Code)
	assert.Equal(t, domain.NewInvalidCredentialsError().Message, domainErr.Message)
}

func TestLogin_GoogleOnlyAccountRejected(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUserByEmail", mock.Anything, "google@example.com").Return(&domain.User{
		ID:       "user-2",
		Email:    "google@example.com",
		GoogleID: "google-sub-123",
	}, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "google@example.com",
		Password: "anything",
	})
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidCredentials, domainErr.Code)
}

func TestValidateJWT_TamperedToken(t *testing.T) {
	repo := new(MockUserRepository)
	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	token, err := svc.CreateJWT(context.Background(), &domain.User{ID: "user-1", Email: "a@b.co"})
	require.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), token+"x")
	assert.Error(t, err)
}

func TestNewAuthService_ShortSecretRejected(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWT.SecretKey = "too-short"

	_, err := NewAuthService(new(MockUserRepository), cfg)
	assert.Error(t, err)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)

	svc, err := NewAuthService(repo, testAuthConfig())
	require.NoError(t, err)

	_, err = svc.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	domainErr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}
