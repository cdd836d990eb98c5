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

// MunicipalityRepository handles persistence for municipalities.
type MunicipalityRepository struct {
	db *sqlx.DB
	observed
}

// NewMunicipalityRepository creates a new repository instance.
func NewMunicipalityRepository(db *sqlx.DB, observer QueryObserver) *MunicipalityRepository {
	return &MunicipalityRepository{db: db, observed: observed{observer: observer}}
}

// List returns every municipality ordered by id.
func (r *MunicipalityRepository) List(ctx context.Context) (items []models.Municipality, err error) {
	defer r.track("municipality.list", time.Now(), &err)
	items = make([]models.Municipality, 0)
	if err = r.db.SelectContext(ctx, &items, `SELECT id, name, code, department_id FROM municipio ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list municipalities: %w", err)
	}
	return items, nil
}

// FindByID returns a municipality by id.
func (r *MunicipalityRepository) FindByID(ctx context.Context, id int64) (_ *models.Municipality, err error) {
	defer r.track("municipality.find", time.Now(), &err)
	var municipality models.Municipality
	if err = r.db.GetContext(ctx, &municipality, `SELECT id, name, code, department_id FROM municipio WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("find municipality: %w", err)
	}
	return &municipality, nil
}

// Create inserts the municipality. An unknown department_id is rejected by the foreign key.
func (r *MunicipalityRepository) Create(ctx context.Context, municipality *models.Municipality) (err error) {
	defer r.track("municipality.create", time.Now(), &err)
	const query = `INSERT INTO municipio (name, code, department_id) VALUES ($1, $2, $3) RETURNING id, name, code, department_id`
	if err = r.db.GetContext(ctx, municipality, query, municipality.Name, municipality.Code, municipality.DepartmentID); err != nil {
		return fmt.Errorf("create municipality: %w", err)
	}
	return nil
}

// Update overwrites every mutable column. It returns sql.ErrNoRows when the id does not exist.
func (r *MunicipalityRepository) Update(ctx context.Context, municipality *models.Municipality) (err error) {
	defer r.track("municipality.update", time.Now(), &err)
	const query = `UPDATE municipio SET name = $1, code = $2, department_id = $3 WHERE id = $4 RETURNING id, name, code, department_id`
	if err = r.db.GetContext(ctx, municipality, query, municipality.Name, municipality.Code, municipality.DepartmentID, municipality.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update municipality: %w", err)
	}
	return nil
}

// Delete removes a municipality. It returns sql.ErrNoRows when the id does not exist.
func (r *MunicipalityRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.track("municipality.delete", time.Now(), &err)
	if err = deleteByID(ctx, r.db, `DELETE FROM municipio WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("delete municipality: %w", err)
	}
	return nil
}
