package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the stored token kinds.
type TokenType string

const (
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypePasswordReset TokenType = "password_reset"
)

// Token is a persisted credential artifact (refresh token or password
// reset token). Only its hash is stored.
type Token struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	Verifier  string    `bson:"verifier,omitempty" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Revoke    bool      `bson:"revoke" json:"revoke"`
}

// Claims are the application-level JWT claims.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
