package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthRepository performs connectivity round-trips against the database.
type HealthRepository struct {
	db *sqlx.DB
	observed
}

// NewHealthRepository creates a new repository instance.
func NewHealthRepository(db *sqlx.DB, observer QueryObserver) *HealthRepository {
	return &HealthRepository{db: db, observed: observed{observer: observer}}
}

// Now asks the database for its current time.
func (r *HealthRepository) Now(ctx context.Context) (now time.Time, err error) {
	defer r.track("health.now", time.Now(), &err)
	if err = r.db.GetContext(ctx, &now, `SELECT NOW()`); err != nil {
		return time.Time{}, fmt.Errorf("database round-trip: %w", err)
	}
	return now, nil
}
