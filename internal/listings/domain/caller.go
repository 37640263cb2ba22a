package domain

import "github.com/google/uuid"

// Role is the caller class that drives visibility.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAgent     Role = "agent"
	RoleAdmin     Role = "admin"
)

// Caller is the already-resolved identity of whoever issues a query.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

// Anonymous returns the caller used when no identity is present.
func Anonymous() Caller {
	return Caller{Role: RoleAnonymous}
}

// IsAuthenticated reports whether the caller carries an identity.
func (c Caller) IsAuthenticated() bool {
	return c.Role != "" && c.Role != RoleAnonymous && c.UserID != uuid.Nil
}

// IsAdmin reports whether the caller is an administrator.
func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == RoleAdmin
}

// CanSeeUnpublished reports whether the caller may query listings outside the
// public visibility clause. Only agents and administrators can.
func (c Caller) CanSeeUnpublished() bool {
	return c.IsAuthenticated() && (c.Role == RoleAgent || c.Role == RoleAdmin)
}

// CanManage reports whether the caller may modify the listing.
func (c Caller) CanManage(l Listing) bool {
	if c.IsAdmin() {
		return true
	}
	return c.IsAuthenticated() && c.Role == RoleAgent && l.AgentID != nil && *l.AgentID == c.UserID
}
