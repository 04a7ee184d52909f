// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// UserContext contains authenticated user information.
type UserContext struct {
	UserID    string
	Name      string
	Email     string
	Roles     []string
	VenueIDs  []string // Venues the user is a member of
	IsAdmin   bool
	SessionID string
}

// HasVenueAccess checks if the user is a member of the venue.
// Admins have access to every venue.
func (u *UserContext) HasVenueAccess(venueID string) bool {
	if u.IsAdmin {
		return true
	}
	for _, id := range u.VenueIDs {
		if id == venueID {
			return true
		}
	}
	return false
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// HasRole checks if user has specific role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasVenueAccess checks if the context user is a member of the venue.
func HasVenueAccess(ctx context.Context, venueID string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	return u.HasVenueAccess(venueID)
}
