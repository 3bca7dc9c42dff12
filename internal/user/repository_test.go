package user

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "role", "permissions"}).
			AddRow(1, "a@example.com", "USER", pq.Array([]string{}))

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("a@example.com", "hashed", "USER").
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), "a@example.com", "hashed", "USER")
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := repo.Create(context.Background(), "a@example.com", "hashed", "USER")
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "permissions"}).
			AddRow(2, "b@example.com", "hash", "ADMIN", pq.Array([]string{PermViewCustomerHistory}))

		mock.ExpectQuery("SELECT .* FROM users").
			WithArgs("b@example.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail("b@example.com")
		assert.NoError(t, err)
		assert.True(t, u.IsAdmin())
		assert.True(t, u.HasPermission(PermViewCustomerHistory))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users").
			WithArgs("nope@example.com").
			WillReturnError(errors.New("sql: no rows in result set"))

		_, err := repo.FindByEmail("nope@example.com")
		assert.Error(t, err)
	})
}

func TestRepository_GrantPermission(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE users").
		WithArgs(3, PermViewCustomerHistory).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.GrantPermission(context.Background(), 3, PermViewCustomerHistory)
	assert.NoError(t, err)
}
