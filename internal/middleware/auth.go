package middleware

import (
	"net/http"

	"hit4power/clubhouse/internal/auth"
	"hit4power/clubhouse/internal/common"
	"hit4power/clubhouse/internal/constants"
)

// Sessions resolves the signed session cookie into request context. It
// never rejects a request itself; the Require* guards below do that.
func Sessions(sessionSvc *common.SessionService, signer *common.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, err := signer.Verify(cookie.Value)
			if err != nil {
				// Tampered or expired cookie: treat as anonymous
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessionSvc.GetSession(r.Context(), sessionID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.SetSessionData(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireInstructor gates instructor-privileged handlers. Requests without
// an instructor session redirect to the instructor login page.
func RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSessionData(r.Context())
		if session == nil || !session.IsInstructor() {
			http.Redirect(w, r, "/instructor/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePlayer gates the player dashboard. Requests without a player
// session redirect to the login page.
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSessionData(r.Context())
		if session == nil || !session.IsPlayer() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
