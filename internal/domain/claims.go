package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos no token
const (
	RoleHQ     = 1
	RoleOffice = 2
)

type Claims struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"role_id"`
	Office     string `json:"office,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsHQ() bool {
	return c != nil && c.UserRoleID == RoleHQ
}
