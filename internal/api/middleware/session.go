package middleware

import (
	"context"
	"net/http"

	"github.com/ecoroute/ecoroute/internal/api/models"
	"github.com/ecoroute/ecoroute/internal/auth"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "ecoroute_session"

// sessionKey is the context key for the authenticated session.
type sessionKey struct{}

// Session creates authentication middleware that validates the session
// cookie. Requests without a valid session receive a 401 with the
// "unauthenticated" code.
func Session(sessions *auth.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthorized(w, r, "no session")
				return
			}

			session, err := sessions.Validate(cookie.Value)
			if err != nil {
				writeUnauthorized(w, r, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized writes a 401 Unauthorized response.
// This is implemented directly here to avoid import cycle with response package.
func writeUnauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	traceID := GetRequestID(r.Context())
	problem := models.NewUnauthorized(traceID, models.CodeUnauthenticated, detail)
	problem.Instance = r.URL.Path
	problem.Write(w)
}

// GetSession retrieves the authenticated session from the context.
// Returns nil when the request is unauthenticated.
func GetSession(ctx context.Context) *auth.Session {
	if s, ok := ctx.Value(sessionKey{}).(*auth.Session); ok {
		return s
	}
	return nil
}

// GetUserID retrieves the authenticated user ID from the context.
// Returns an empty string if not authenticated.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}
