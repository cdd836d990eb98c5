package dto

// Request bodies for the catalog endpoints. Field order is the order in which
// missing fields are reported; label names the field in client messages.

// DepartmentRequest creates or fully replaces a department.
type DepartmentRequest struct {
	Name string `json:"name" validate:"required" label:"nombre"`
	Code string `json:"code" validate:"required" label:"codigo"`
}

// MunicipalityRequest creates or fully replaces a municipality.
type MunicipalityRequest struct {
	Name         string `json:"name" validate:"required" label:"nombre"`
	Code         string `json:"code" validate:"required" label:"codigo"`
	DepartmentID *int64 `json:"department_id" validate:"required" label:"departamento"`
}

// SchoolRequest creates or fully replaces a school.
type SchoolRequest struct {
	Name           string `json:"name" validate:"required" label:"nombre"`
	Code           string `json:"code" validate:"required" label:"codigo"`
	MunicipalityID *int64 `json:"municipality_id" validate:"required" label:"municipio"`
}

// SiteRequest creates or fully replaces a school site.
type SiteRequest struct {
	Name     string `json:"name" validate:"required" label:"nombre"`
	Code     string `json:"code" validate:"required" label:"codigo"`
	SchoolID *int64 `json:"school_id" validate:"required" label:"colegio"`
}

// UserRequest creates or fully replaces a user. Role must be admin, teacher or student.
type UserRequest struct {
	Name string `json:"name" validate:"required" label:"nombre"`
	Role string `json:"role" validate:"required,role" label:"rol"`
}
