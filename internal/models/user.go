package models

// UserRole represents the closed set of roles a user may hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

var roleLabels = map[UserRole]string{
	RoleAdmin:   "Administrador",
	RoleTeacher: "Profesor",
	RoleStudent: "Estudiante",
}

// Roles lists the known roles in display order.
func Roles() []UserRole {
	return []UserRole{RoleAdmin, RoleTeacher, RoleStudent}
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the display label, falling back to the raw value.
func (r UserRole) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// RoleOption is a value/label pair for role pickers.
type RoleOption struct {
	Value UserRole `json:"value"`
	Label string   `json:"label"`
}

// User is an application user stored in the usuarios table.
type User struct {
	ID   int64    `db:"id" json:"id"`
	Name string   `db:"name" json:"name"`
	Role UserRole `db:"role" json:"role"`
}
