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

// DepartmentRepository handles persistence for departments.
type DepartmentRepository struct {
	db *sqlx.DB
	observed
}

// NewDepartmentRepository creates a new repository instance.
func NewDepartmentRepository(db *sqlx.DB, observer QueryObserver) *DepartmentRepository {
	return &DepartmentRepository{db: db, observed: observed{observer: observer}}
}

// List returns every department ordered by id.
func (r *DepartmentRepository) List(ctx context.Context) (items []models.Department, err error) {
	defer r.track("department.list", time.Now(), &err)
	items = make([]models.Department, 0)
	if err = r.db.SelectContext(ctx, &items, `SELECT id, name, code FROM departamento ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return items, nil
}

// FindByID returns a department by id.
func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (_ *models.Department, err error) {
	defer r.track("department.find", time.Now(), &err)
	var department models.Department
	if err = r.db.GetContext(ctx, &department, `SELECT id, name, code FROM departamento WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return &department, nil
}

// Create inserts the department and fills in the stored row.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (err error) {
	defer r.track("department.create", time.Now(), &err)
	const query = `INSERT INTO departamento (name, code) VALUES ($1, $2) RETURNING id, name, code`
	if err = r.db.GetContext(ctx, department, query, department.Name, department.Code); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update overwrites every mutable column. It returns sql.ErrNoRows when the id does not exist.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) (err error) {
	defer r.track("department.update", time.Now(), &err)
	const query = `UPDATE departamento SET name = $1, code = $2 WHERE id = $3 RETURNING id, name, code`
	if err = r.db.GetContext(ctx, department, query, department.Name, department.Code, department.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete removes a department. It returns sql.ErrNoRows when the id does not exist.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.track("department.delete", time.Now(), &err)
	if err = deleteByID(ctx, r.db, `DELETE FROM departamento WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
