package permission

import "pulsecrm/models"

// Role is the exhaustive set of dashboard roles.
type Role int

const (
	RoleUser Role = iota
	RoleManager
	RoleAdmin
)

// ParseRole maps a stored role string to a Role. Unknown strings map to
// RoleUser: the stored permission records only carry per-role flags for
// admin/manager/user, so an unrecognized role gets the least-privileged tier.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleUser
	}
}

// String returns the stored representation of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	default:
		return "user"
	}
}

// Allowed reports whether the role may access the given route. A route with
// no stored permission record is open to every role.
func Allowed(role Role, route string, perms map[string]models.Permission) bool {
	perm, ok := perms[route]
	if !ok {
		return true
	}
	switch role {
	case RoleAdmin:
		return perm.AdminAccess
	case RoleManager:
		return perm.ManagerAccess
	default:
		return perm.UserAccess
	}
}

// BuildIndex keys a permission list by route for gate lookups.
func BuildIndex(perms []models.Permission) map[string]models.Permission {
	index := make(map[string]models.Permission, len(perms))
	for _, p := range perms {
		index[p.Route] = p
	}
	return index
}
