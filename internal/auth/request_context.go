package auth

import (
	"context"

	"hit4power/clubhouse/internal/common"
)

type contextKey string

var sessionDataKey contextKey = "session_data"

// SetSessionData stores the resolved session in the request context.
func SetSessionData(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey, session)
}

// GetSessionData retrieves the session from the request context. Returns
// nil when the request carries no valid session.
func GetSessionData(ctx context.Context) *common.SessionData {
	val := ctx.Value(sessionDataKey)
	if session, ok := val.(*common.SessionData); ok {
		return session
	}
	return nil
}
