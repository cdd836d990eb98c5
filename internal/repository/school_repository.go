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

// SchoolRepository handles persistence for schools.
type SchoolRepository struct {
	db *sqlx.DB
	observed
}

// NewSchoolRepository creates a new repository instance.
func NewSchoolRepository(db *sqlx.DB, observer QueryObserver) *SchoolRepository {
	return &SchoolRepository{db: db, observed: observed{observer: observer}}
}

func (r *SchoolRepository) List(ctx context.Context) (items []models.School, err error) {
	defer r.track("school.list", time.Now(), &err)
	items = make([]models.School, 0)
	if err = r.db.SelectContext(ctx, &items, `SELECT id, name, code, municipality_id FROM colegio ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return items, nil
}

func (r *SchoolRepository) FindByID(ctx context.Context, id int64) (_ *models.School, err error) {
	defer r.track("school.find", time.Now(), &err)
	var school models.School
	if err = r.db.GetContext(ctx, &school, `SELECT id, name, code, municipality_id FROM colegio WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("find school: %w", err)
	}
	return &school, nil
}

func (r *SchoolRepository) Create(ctx context.Context, school *models.School) (err error) {
	defer r.track("school.create", time.Now(), &err)
	const query = `INSERT INTO colegio (name, code, municipality_id) VALUES ($1, $2, $3) RETURNING id, name, code, municipality_id`
	if err = r.db.GetContext(ctx, school, query, school.Name, school.Code, school.MunicipalityID); err != nil {
		return fmt.Errorf("create school: %w", err)
	}
	return nil
}

func (r *SchoolRepository) Update(ctx context.Context, school *models.School) (err error) {
	defer r.track("school.update", time.Now(), &err)
	const query = `UPDATE colegio SET name = $1, code = $2, municipality_id = $3 WHERE id = $4 RETURNING id, name, code, municipality_id`
	if err = r.db.GetContext(ctx, school, query, school.Name, school.Code, school.MunicipalityID, school.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update school: %w", err)
	}
	return nil
}

func (r *SchoolRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.track("school.delete", time.Now(), &err)
	if err = deleteByID(ctx, r.db, `DELETE FROM colegio WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("delete school: %w", err)
	}
	return nil
}
