package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/repository/models"
	"lingopath/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(modelUser *models.User) *domain.User {
	if modelUser == nil {
		return nil
	}
	var deletedAt *time.Time
	if modelUser.DeletedAt.Valid {
		deletedAt = &modelUser.DeletedAt.Time
	}
	return &domain.User{
		ID:           modelUser.ID,
		Email:        modelUser.Email,
		PasswordHash: modelUser.PasswordHash.String,
		GoogleID:     modelUser.GoogleID.String,
		Name:         modelUser.Name,
		CreatedAt:    modelUser.CreatedAt,
		UpdatedAt:    modelUser.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func fromDomainUser(domainUser *domain.User) *models.User {
	if domainUser == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if domainUser.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*domainUser.DeletedAt)
	}
	return &models.User{
		ID:           domainUser.ID,
		Email:        domainUser.Email,
		PasswordHash: util.StringToNullString(domainUser.PasswordHash),
		GoogleID:     util.StringToNullString(domainUser.GoogleID),
		Name:         domainUser.Name,
		CreatedAt:    domainUser.CreatedAt,
		UpdatedAt:    domainUser.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, google_id, name, created_at, updated_at)
	          VALUES (:id, :email, :password_hash, :google_id, :name, :created_at, :updated_at)`

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainUser(user))
	if err != nil {
		// A duplicate email surfaces as ORA-00001; the service checks for the
		// email up front, so this only fires on a registration race.
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, args map[string]interface{}) (*domain.User, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare user query: %w", err)
	}
	defer stmt.Close()

	var user models.User
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found; services decide what that means
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&user), nil
}

// GetUserByEmail retrieves a user by email.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE email = :email AND deleted_at IS NULL`
	return r.getOne(ctx, query, map[string]interface{}{"email": email})
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE id = :id AND deleted_at IS NULL`
	return r.getOne(ctx, query, map[string]interface{}{"id": userID})
}

// GetUserByGoogleID retrieves a user by their Google ID.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE google_id = :google_id AND deleted_at IS NULL`
	return r.getOne(ctx, query, map[string]interface{}{"google_id": googleID})
}

// UpdateUser updates an existing user's mutable fields.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()

	query := `UPDATE users SET
	            email = :email,
	            password_hash = :password_hash,
	            google_id = :google_id,
	            name = :name,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainUser(user))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
