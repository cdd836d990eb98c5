package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/colegios-api/internal/models"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sqlx.DB
	observed
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB, observer QueryObserver) *UserRepository {
	return &UserRepository{db: db, observed: observed{observer: observer}}
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) (items []models.User, err error) {
	defer r.track("user.list", time.Now(), &err)
	items = make([]models.User, 0)
	if err = r.db.SelectContext(ctx, &items, `SELECT id, name, role FROM usuarios ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

// FindByID returns a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (_ *models.User, err error) {
	defer r.track("user.find", time.Now(), &err)
	var user models.User
	if err = r.db.GetContext(ctx, &user, `SELECT id, name, role FROM usuarios WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Create inserts the user and fills in the stored row.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (err error) {
	defer r.track("user.create", time.Now(), &err)
	const query = `INSERT INTO usuarios (name, role) VALUES ($1, $2) RETURNING id, name, role`
	if err = r.db.GetContext(ctx, user, query, user.Name, user.Role); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update overwrites name and role. It returns sql.ErrNoRows when the id does not exist.
func (r *UserRepository) Update(ctx context.Context, user *models.User) (err error) {
	defer r.track("user.update", time.Now(), &err)
	const query = `UPDATE usuarios SET name = $1, role = $2 WHERE id = $3 RETURNING id, name, role`
	if err = r.db.GetContext(ctx, user, query, user.Name, user.Role, user.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user. It returns sql.ErrNoRows when the id does not exist.
func (r *UserRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.track("user.delete", time.Now(), &err)
	if err = deleteByID(ctx, r.db, `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
