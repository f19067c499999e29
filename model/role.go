package model

import "github.com/golang-jwt/jwt/v5"

const (
	RoleWorker      = "worker"
	RoleSupervisor  = "supervisor"
	RoleAdmin       = "admin"
	RoleDGMSOfficer = "dgms_officer"
)

// Principal is the authenticated caller as decoded from the access token.
type Principal struct {
	UserID string
	Role   string
}

// Oversees reports whether the principal may act on any user's checklist.
func (p Principal) Oversees() bool {
	return p.Role == RoleAdmin || p.Role == RoleDGMSOfficer
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
