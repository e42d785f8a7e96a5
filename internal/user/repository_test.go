package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
)

func setupUserMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"})
}

func TestCreateUser(t *testing.T) {
	repo, mock, closer := setupUserMock(t)
	defer closer()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Daniela", "daniela@example.com", "hash", "member").
		WillReturnRows(userRows().AddRow(1, "Daniela", "daniela@example.com", "hash", "member", now))

	u, err := repo.Create(context.Background(), "Daniela", "daniela@example.com", "hash", "member")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, RoleMember, u.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNotFound(t *testing.T) {
	repo, mock, closer := setupUserMock(t)
	defer closer()

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	repo, mock, closer := setupUserMock(t)
	defer closer()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("daniela@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.EmailExists(context.Background(), "daniela@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
