package http

import (
	"context"
	"fmt"

	"closetshare-backend/internal/security"
)

type contextKey string

const userClaimsKey contextKey = "user-claims"

// WithUserClaims stores the authenticated caller's claims on the request
// context.
func WithUserClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// GetUserIDFromContext extracts the authenticated user id placed on the
// context by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(userClaimsKey).(*security.UserClaims)
	if !ok || claims.UserID == "" {
		return "", fmt.Errorf("no authenticated user on request")
	}
	return claims.UserID, nil
}
