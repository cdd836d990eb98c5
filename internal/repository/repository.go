package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// QueryObserver receives the timing and outcome of every query a repository runs.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration, err error)
}

type observed struct {
	observer QueryObserver
}

func (o observed) track(label string, start time.Time, errp *error) {
	if o.observer == nil {
		return
	}
	var err error
	if errp != nil {
		err = *errp
		if err == sql.ErrNoRows {
			err = nil
		}
	}
	o.observer.ObserveDBQuery(label, time.Since(start), err)
}

// deleteByID removes one row and reports sql.ErrNoRows when nothing matched.
func deleteByID(ctx context.Context, db *sqlx.DB, query string, id int64) error {
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
