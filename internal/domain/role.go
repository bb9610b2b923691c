package domain

// Role represents the role of an authenticated caller
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleDoctor
}
