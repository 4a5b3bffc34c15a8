package auth

import (
	"context"

	"github.com/pkg/errors"

	"hts_portal/internal/models"
)

var (
	// ErrInvalidCredentials is the only error a failed login surfaces,
	// whatever the underlying cause.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an identity lacks the role an operation
	// requires.
	ErrForbidden = errors.New("forbidden")
)

// Identity is the authenticated user's resolved profile. It lives only in the
// session store and in the request context.
type Identity struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	CompanyID   *int64      `json:"empresa_id"`
	CompanyName string      `json:"empresa_nombre"`
}

func (i Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// IdentityFromUser resolves a user row (joined with its company) into an
// Identity. Users without a role log in as USER.
func IdentityFromUser(u models.User) Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		Role:        models.ParseRole(string(u.Role)),
		CompanyID:   u.CompanyID,
		CompanyName: u.CompanyName(),
	}
}

// RequireAdmin returns ErrForbidden unless id is an administrator.
func RequireAdmin(id *Identity) error {
	if id == nil || !id.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity attached to ctx, or nil for anonymous
// requests.
func FromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return nil
	}
	return &id
}
