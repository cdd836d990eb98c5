package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colegios-api/internal/models"
)

func TestUserList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "name", "role"}).
		AddRow(1, "Ana", "admin").
		AddRow(2, "Luis", "teacher")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, role FROM usuarios ORDER BY id")).WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleTeacher, users[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateUpdateDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios (name, role) VALUES ($1, $2) RETURNING id, name, role")).
		WithArgs("Ana", models.RoleStudent).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}).AddRow(42, "Ana", "student"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE usuarios SET name = $1, role = $2 WHERE id = $3 RETURNING id, name, role")).
		WithArgs("Ana", models.RoleTeacher, int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}).AddRow(42, "Ana", "teacher"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM usuarios WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM usuarios WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	user := &models.User{Name: "Ana", Role: models.RoleStudent}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int64(42), user.ID)

	user.Role = models.RoleTeacher
	require.NoError(t, repo.Update(context.Background(), user))
	assert.Equal(t, models.RoleTeacher, user.Role)

	require.NoError(t, repo.Delete(context.Background(), 42))
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthNow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHealthRepository(db, nil)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT NOW()")).WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(now))

	got, err := repo.Now(context.Background())
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}
