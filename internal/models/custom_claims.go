package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by access tokens. UserID is opaque to
// this service; it only scopes data.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
}
