package auth

import "rodacerta/frotagest/internal/constants"

// UserClaims is the identity attached to an authenticated request,
// whether it came in with an operator JWT or an integration API key.
type UserClaims interface {
	UserID() string
	Role() constants.OperatorRole
	Source() string
	CanManage() bool
}

// JWTClaims is a logged-in console operator.
type JWTClaims struct {
	OperatorID string
	Name       string
	RoleValue  constants.OperatorRole
}

func (c *JWTClaims) UserID() string               { return c.OperatorID }
func (c *JWTClaims) Role() constants.OperatorRole { return c.RoleValue }
func (c *JWTClaims) Source() string               { return "JWT" }
func (c *JWTClaims) CanManage() bool {
	return c.RoleValue == constants.RoleManager || c.RoleValue == constants.RoleAdmin
}

// APIKeyClaims is a machine integration using an issued API key.
// Keys act with manager rights but carry no operator identity.
type APIKeyClaims struct {
	KeyLabel string
}

func (c *APIKeyClaims) UserID() string               { return "" }
func (c *APIKeyClaims) Role() constants.OperatorRole { return constants.RoleManager }
func (c *APIKeyClaims) Source() string               { return "API_KEY" }
func (c *APIKeyClaims) CanManage() bool              { return true }
