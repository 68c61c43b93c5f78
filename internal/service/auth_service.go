package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lingopath/internal/config"
	"lingopath/internal/domain"
	"lingopath/internal/dto"
	"lingopath/internal/logger"
	"lingopath/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// bcryptCost matches the platform-wide password hashing cost factor.
	bcryptCost = 10
)

var (
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
	ErrFailedToExchangeToken = errors.New("failed to exchange oauth token")
	ErrFailedToGetUserInfo   = errors.New("failed to get user info from google")
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, user *domain.User) (string, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)

	GetGoogleLoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (string, *domain.User, error)
}

type authServiceImpl struct {
	userRepo     domain.UserRepository
	oauth2Config *oauth2.Config
	appConfig    *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, appConfig *config.Config) (AuthService, error) {
	if len(appConfig.JWT.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}

	return &authServiceImpl{
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     appConfig.GoogleOAuth.ClientID,
			ClientSecret: appConfig.GoogleOAuth.ClientSecret,
			RedirectURL:  appConfig.GoogleOAuth.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		appConfig: appConfig,
	}, nil
}

// Register creates a password account and issues a token. A taken email is
// a conflict; the hash is computed before any row is written.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewInternalError("failed to check existing email", err)
	}
	if existing != nil {
		return nil, domain.NewEmailTakenError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &domain.User{
		ID:           util.NewULID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("failed to create user", err)
	}

	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return nil, domain.NewInternalError("failed to create token", err)
	}

	appLogger.Info("User registered", zap.String("userID", user.ID), zap.String("email", user.Email))
	return &dto.AuthResponse{
		Message: "Registration successful",
		User:    toUserResponse(user),
		Token:   token,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email, wrong
// password and password-less (Google-only) accounts all return the same
// generic error so the endpoint cannot be used for user enumeration.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewInvalidCredentialsError()
	}

	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return nil, domain.NewInternalError("failed to create token", err)
	}

	appLogger.Info("User logged in", zap.String("userID", user.ID))
	return &dto.AuthResponse{
		Message: "Login successful",
		User:    toUserResponse(user),
		Token:   token,
	}, nil
}

// CreateJWT signs a stateless bearer token embedding the user identity.
func (s *authServiceImpl) CreateJWT(ctx context.Context, user *domain.User) (string, error) {
	claims := dto.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.appConfig.JWT.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ValidateJWT parses and verifies a token, failing on expiry or a
// signature mismatch.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired",
				zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		} else {
			appLogger.Warn("JWT validation failed",
				zap.Error(err),
				zap.String("token_snippet", tokenString[:min(len(tokenString), 20)]+"..."))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

// GetProfile returns the public view of an account.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user not found: %s", userID))
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) GetGoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// HandleGoogleCallback exchanges the authorization code, upserts the user
// by Google ID and issues the same platform JWT as password login.
func (s *authServiceImpl) HandleGoogleCallback(ctx context.Context, code string) (string, *domain.User, error) {
	appLogger := logger.Get()

	googleToken, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToExchangeToken, err)
	}

	client := s.oauth2Config.Client(ctx, googleToken)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFailedToGetUserInfo, err)
	}
	defer resp.Body.Close()

	var userInfo dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if userInfo.ID == "" || userInfo.Email == "" {
		return "", nil, errors.New("google user info is incomplete")
	}

	user, err := s.userRepo.GetUserByGoogleID(ctx, userInfo.ID)
	if err != nil {
		return "", nil, fmt.Errorf("error fetching user by google_id: %w", err)
	}

	if user == nil {
		user = &domain.User{
			ID:       util.NewULID(),
			Email:    userInfo.Email,
			GoogleID: userInfo.ID,
			Name:     userInfo.Name,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return "", nil, fmt.Errorf("failed to create user: %w", err)
		}
		appLogger.Info("New user created via Google OAuth", zap.String("userID", user.ID), zap.String("email", user.Email))
	} else {
		user.Email = userInfo.Email // Google is source of truth for email
		user.Name = userInfo.Name
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return "", nil, fmt.Errorf("failed to update user: %w", err)
		}
		appLogger.Info("User logged in via Google OAuth", zap.String("userID", user.ID))
	}

	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create token: %w", err)
	}
	return token, user, nil
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
