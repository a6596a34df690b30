package model

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the token payload issued by the identity service.
type IdentityClaims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (c IdentityClaims) User() User {
	return User{
		ID:          c.UserID,
		Username:    c.Username,
		DisplayName: c.Name,
	}
}
