package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"lingopath/internal/domain"
	"lingopath/internal/repository/models"
	"lingopath/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

var userColumns = []string{"id", "email", "password_hash", "google_id", "name", "created_at", "updated_at", "deleted_at"}

// --- Tests for converter functions ---

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelUser := &models.User{
		ID:           "user1",
		Email:        "test@example.com",
		PasswordHash: sql.NullString{String: "hash", Valid: true},
		GoogleID:     sql.NullString{},
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
		DeletedAt:    sql.NullTime{},
	}

	domainUser := toDomainUser(modelUser)
	require.NotNil(t, domainUser)
	assert.Equal(t, modelUser.ID, domainUser.ID)
	assert.Equal(t, modelUser.Email, domainUser.Email)
	assert.Equal(t, "hash", domainUser.PasswordHash)
	assert.Equal(t, "", domainUser.GoogleID)
	assert.Equal(t, modelUser.Name, domainUser.Name)
	assert.Nil(t, domainUser.DeletedAt)

	deletedTime := now.Add(-time.Hour)
	modelUser.DeletedAt = sql.NullTime{Time: deletedTime, Valid: true}
	domainUser = toDomainUser(modelUser)
	require.NotNil(t, domainUser.DeletedAt)
	assert.True(t, deletedTime.Equal(*domainUser.DeletedAt))

	assert.Nil(t, toDomainUser(nil))
}

func TestFromDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	domainUser := &domain.User{
		ID:           "user1",
		Email:        "test@example.com",
		PasswordHash: "hash",
		GoogleID:     "",
		Name:         "Test User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	modelUser := fromDomainUser(domainUser)
	require.NotNil(t, modelUser)
	assert.Equal(t, domainUser.ID, modelUser.ID)
	assert.True(t, modelUser.PasswordHash.Valid)
	assert.Equal(t, "hash", modelUser.PasswordHash.String)
	assert.False(t, modelUser.GoogleID.Valid)
	assert.False(t, modelUser.DeletedAt.Valid)

	assert.Nil(t, fromDomainUser(nil))
}

// --- Tests for repository methods ---

func TestGetUserByEmail_Found(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow("user1", "test@example.com", "hash", nil, "Test User", now, now, nil)
	mock.ExpectPrepare(`SELECT \* FROM users WHERE email = \?`).
		ExpectQuery().
		WithArgs("test@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFoundIsNilNil(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectPrepare(`SELECT \* FROM users WHERE email = \?`).
		ExpectQuery().
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), &domain.User{
		ID:           util.NewULID(),
		Email:        "new@example.com",
		PasswordHash: "hash",
		Name:         "New User",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_MissingRowIsError(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	mock.ExpectExec(`UPDATE users SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(context.Background(), &domain.User{
		ID:    "missing",
		Email: "x@example.com",
		Name:  "X",
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
