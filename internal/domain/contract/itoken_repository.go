package contract

import (
	"context"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	// GetTokenByUserID retrieves the newest non-revoked refresh token of a user.
	GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error)
	// GetTokenByVerifier retrieves a password reset token by its verifier.
	GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error)
	// UpdateToken replaces the hash and expiry of a stored token.
	UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	// RevokeToken marks a token as revoked.
	RevokeToken(ctx context.Context, id string) error
}
