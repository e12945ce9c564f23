package model

// Role determines a user's write privileges on the feed.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni:
		return true
	}
	return false
}
