package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAnalyst = "analyst"
)

type Claims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AnonymousClaims é usado quando a autenticação está desligada (AUTH_SECRET vazio).
func AnonymousClaims() *Claims {
	return &Claims{
		UserID:   "anonymous",
		UserName: "anonymous",
		Role:     RoleAdmin,
	}
}
