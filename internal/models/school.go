package models

// School (colegio) belongs to a municipality.
type School struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Code           string `db:"code" json:"code"`
	MunicipalityID int64  `db:"municipality_id" json:"municipality_id"`
}
