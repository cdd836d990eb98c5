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

// SiteRepository handles persistence for school sites.
type SiteRepository struct {
	db *sqlx.DB
	observed
}

// NewSiteRepository creates a new repository instance.
func NewSiteRepository(db *sqlx.DB, observer QueryObserver) *SiteRepository {
	return &SiteRepository{db: db, observed: observed{observer: observer}}
}

// List returns every site ordered by id.
func (r *SiteRepository) List(ctx context.Context) (items []models.Site, err error) {
	defer r.track("site.list", time.Now(), &err)
	items = make([]models.Site, 0)
	if err = r.db.SelectContext(ctx, &items, `SELECT id, name, code, school_id FROM sede ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return items, nil
}

// FindByID returns a site by id.
func (r *SiteRepository) FindByID(ctx context.Context, id int64) (_ *models.Site, err error) {
	defer r.track("site.find", time.Now(), &err)
	var site models.Site
	if err = r.db.GetContext(ctx, &site, `SELECT id, name, code, school_id FROM sede WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("find site: %w", err)
	}
	return &site, nil
}

// Create inserts the site and fills in the stored row.
func (r *SiteRepository) Create(ctx context.Context, site *models.Site) (err error) {
	defer r.track("site.create", time.Now(), &err)
	const query = `INSERT INTO sede (name, code, school_id) VALUES ($1, $2, $3) RETURNING id, name, code, school_id`
	if err = r.db.GetContext(ctx, site, query, site.Name, site.Code, site.SchoolID); err != nil {
		return fmt.Errorf("create site: %w", err)
	}
	return nil
}

// Update overwrites every mutable column.
func (r *SiteRepository) Update(ctx context.Context, site *models.Site) (err error) {
	defer r.track("site.update", time.Now(), &err)
	const query = `UPDATE sede SET name = $1, code = $2, school_id = $3 WHERE id = $4 RETURNING id, name, code, school_id`
	if err = r.db.GetContext(ctx, site, query, site.Name, site.Code, site.SchoolID, site.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}

// Delete removes a site.
func (r *SiteRepository) Delete(ctx context.Context, id int64) (err error) {
	defer r.track("site.delete", time.Now(), &err)
	if err = deleteByID(ctx, r.db, `DELETE FROM sede WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}
