package session

import "context"

// Identity is the authenticated user bound to a session token.
type Identity struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// Provider issues and resolves opaque session tokens. Implementations must
// treat Destroy as idempotent and must stop resolving a token after its TTL.
type Provider interface {
	Create(ctx context.Context, userID int, username string) (string, error)
	// Resolve returns nil when the token is unknown or expired.
	Resolve(ctx context.Context, token string) (*Identity, error)
	Destroy(ctx context.Context, token string) error
}
