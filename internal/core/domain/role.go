package domain

// Role is a named credential tier selectable in the orders page UI. Each role
// maps to a pre-issued JWT supplied via deployment configuration; the
// dashboard never mints or inspects these tokens beyond forwarding them.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleInvalid Role = "invalid"
)

// Roles lists the fixed role key set in display order.
var Roles = []Role{RoleAdmin, RoleUser, RoleInvalid}

// Label returns the human-readable selector label for the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleUser:
		return "User 'Around The Horn'"
	case RoleInvalid:
		return "Invalid User"
	default:
		return string(r)
	}
}
