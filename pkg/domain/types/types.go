package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SessionID represents a session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}

// SessionSecret represents a session secret token
type SessionSecret string

// String returns the string representation
func (s SessionSecret) String() string {
	return string(s)
}

// AccessToken is the bearer token issued by the booking backend
type AccessToken string

// String returns the string representation
func (t AccessToken) String() string {
	return string(t)
}

// ComboID represents a combo identifier on the booking backend
type ComboID int64

// String returns the string representation
func (id ComboID) String() string {
	return fmt.Sprintf("%d", id)
}

// ChildID represents a child record identifier
type ChildID string

// String returns the string representation
func (id ChildID) String() string {
	return string(id)
}

// Role is the account role carried in the backend token
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

// ParseRole normalizes a role string from the backend ("ROLE_ADMIN", "Admin", "admin")
func ParseRole(s string) Role {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "role_")
	return Role(s)
}

// CanViewSchedule reports whether the role may see the staff schedule grid
func (r Role) CanViewSchedule() bool {
	return r == RoleAdmin || r == RoleStaff
}
