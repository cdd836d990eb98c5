package models

// Site (sede) is a physical campus of a school.
type Site struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Code     string `db:"code" json:"code"`
	SchoolID int64  `db:"school_id" json:"school_id"`
}
