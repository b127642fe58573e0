package auth

import (
	"context"

	apperrors "yeoman/internal/errors"
	"yeoman/internal/models"
)

type ctxKey int

const tokenKey ctxKey = iota

// WithToken stashes the raw bearer token on the request context for
// resolvers to verify.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext extracts the raw bearer token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// UserFinder looks up users for identity resolution.
type UserFinder interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Guard resolves the request identity from its session token and
// enforces the admin gate on content mutations and draft reads.
type Guard struct {
	secret    []byte
	adminName string
	users     UserFinder
}

// NewGuard creates a guard. adminName is the single process-wide
// account allowed to mutate content.
func NewGuard(secret []byte, adminName string, users UserFinder) *Guard {
	return &Guard{secret: secret, adminName: adminName, users: users}
}

// AdminName returns the configured admin account name.
func (g *Guard) AdminName() string {
	return g.adminName
}

// CurrentUserID verifies the request's session token and returns the
// embedded user id.
func (g *Guard) CurrentUserID(ctx context.Context) (string, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return "", apperrors.Unauthenticated()
	}
	claims, err := ValidateJWT(token, g.secret)
	if err != nil {
		return "", apperrors.Unauthenticated()
	}
	return claims.UserID, nil
}

// CurrentUser resolves the full user record for the request identity.
func (g *Guard) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := g.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := g.users.GetUserByID(ctx, userID)
	if err != nil {
		// A valid token for a deleted user is still unauthenticated.
		return nil, apperrors.Unauthenticated()
	}
	return user, nil
}

// RequireAdmin resolves the current user and fails with
// NOT_AUTHORIZED unless it is the configured admin account.
func (g *Guard) RequireAdmin(ctx context.Context) (*models.User, error) {
	user, err := g.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Name != g.adminName {
		return nil, apperrors.NotAuthorized()
	}
	return user, nil
}

// IsAdmin reports whether the request identity is the admin account.
func (g *Guard) IsAdmin(ctx context.Context) bool {
	_, err := g.RequireAdmin(ctx)
	return err == nil
}
