package model

// Principal is the authenticated actor attached to a request by the upstream
// transport. It is authorization context only and is never persisted as part
// of an entity payload.
type Principal struct {
	UserID uint
	Role   string
}

// IsAdmin reports whether the actor bypasses ownership scoping.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
