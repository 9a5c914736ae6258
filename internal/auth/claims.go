package auth

import "flightline/opsdeck/internal/constants"

// UserClaims is the identity the middleware attaches to every request.
type UserClaims interface {
	UserID() string
	Role() constants.OpsRole
	Source() string
	Email() string
}

// APIKeyClaims carries identity resolved from an X-API-Key header.
type APIKeyClaims struct {
	UserUUID  string
	RoleValue constants.OpsRole
	EmailVal  string
}

func (c *APIKeyClaims) UserID() string          { return c.UserUUID }
func (c *APIKeyClaims) Role() constants.OpsRole { return c.RoleValue }
func (c *APIKeyClaims) Source() string          { return string(constants.RequestSourceAPIKey) }
func (c *APIKeyClaims) Email() string           { return c.EmailVal }

// SessionClaims carries identity resolved from a presigned dashboard token.
type SessionClaims struct {
	UserUUID  string
	RoleValue constants.OpsRole
	EmailVal  string
	TokenID   string
}

func (c *SessionClaims) UserID() string          { return c.UserUUID }
func (c *SessionClaims) Role() constants.OpsRole { return c.RoleValue }
func (c *SessionClaims) Source() string          { return string(constants.RequestSourceSession) }
func (c *SessionClaims) Email() string           { return c.EmailVal }
