package entity

import "time"

// Application roles. Authorization is any-of over the user's role list.
const (
	RoleAdmin    = "Admin"
	RolePlanner  = "Planner"
	RoleOperator = "Operator"
	RoleViewer   = "Viewer"
)

// User represents an account that can log into the API.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Roles        []string
	EmployeeCode string // optional link to an Employee record
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
