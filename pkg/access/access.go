// Package access defines who is calling and what they may touch.
package access

type Role string

const (
	RoleUser      Role = "user"
	RolePublisher Role = "publisher"
	RoleSeller    Role = "seller"
	RoleAdmin     Role = "admin"
)

// Roles lists every role a stored user may hold.
var Roles = []Role{RoleUser, RolePublisher, RoleSeller, RoleAdmin}

func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the authenticated caller resolved from a credential.
type Principal struct {
	ID   string
	Role Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// HasRole reports whether the principal's role is in allowed.
func HasRole(p *Principal, allowed ...Role) bool {
	if p == nil {
		return false
	}
	for _, role := range allowed {
		if p.Role == role {
			return true
		}
	}
	return false
}

// CanMutate is the ownership rule shared by every write path.
func CanMutate(p *Principal, ownerID string) bool {
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin || (ownerID != "" && p.ID == ownerID)
}
