package models

// Municipality belongs to a department.
type Municipality struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Code         string `db:"code" json:"code"`
	DepartmentID int64  `db:"department_id" json:"department_id"`
}
