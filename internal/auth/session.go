package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/icemanhv/forum/internal/errors"
)

// sessionContextKey is where the middleware stores validated claims.
const sessionContextKey = "user"

// Session is the explicit per-request authentication state. Handlers receive
// it from the request context instead of consulting any global current-user.
type Session struct {
	UserID    uint
	Email     string
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// SessionFromContext extracts the authenticated session set by the auth
// middleware. Anonymous requests get ErrUnauthorized.
func SessionFromContext(c echo.Context) (*Session, error) {
	claims, ok := c.Get(sessionContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthorized
	}
	s := &Session{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
