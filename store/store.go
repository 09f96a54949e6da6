package store

import (
	"context"
	"errors"
	"time"

	"classroom-dashboard/models"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrInvalidRole = errors.New("invalid role")
)

// UserStore is the data-access contract for user records.
type UserStore interface {
	// UpsertByEmail returns the user with the given email, creating it with
	// the default student role on first sight. An existing record is
	// returned unchanged: name and picture are not refreshed on repeat login.
	UpsertByEmail(ctx context.Context, email, name, picture string) (*models.User, error)

	// GetByID returns (nil, nil) when no user has the given id.
	GetByID(ctx context.Context, id string) (*models.User, error)

	List(ctx context.Context) ([]models.User, error)

	// UpdateRole sets the user's role. Returns ErrInvalidRole for a role
	// outside the known set and ErrNotFound for an unknown user id.
	UpdateRole(ctx context.Context, userID, role string) error
}

// SessionStore is the data-access contract for session records.
type SessionStore interface {
	Create(ctx context.Context, userID, token string, ttl time.Duration) (*models.Session, error)

	// Resolve returns (nil, nil) when the token matches no session or the
	// matching session has expired. Expired records are left in place.
	Resolve(ctx context.Context, token string) (*models.Session, error)

	// Revoke deletes the session with the given token. Revoking a missing
	// token is a no-op.
	Revoke(ctx context.Context, token string) error

	// DeleteExpired removes sessions whose expiry is before now and returns
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
