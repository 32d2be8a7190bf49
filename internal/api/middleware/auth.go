package middleware

import (
	"context"
	"net/http"

	"github.com/Rrens/design-assistant/internal/api/response"
	"github.com/Rrens/design-assistant/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const authResultKey contextKey = "authResult"

// AuthResult is the uniform outcome of credential resolution. It never
// represents an error: a missing or invalid credential simply yields
// Authenticated == false, and each route decides whether that matters.
type AuthResult struct {
	Authenticated bool
	UserID        uuid.UUID
	SessionID     uuid.UUID
	// HadToken reports that a credential was presented, valid or not,
	// so handlers can clear a stale cookie.
	HadToken bool
	// Token is the presented credential, kept for logout/revocation.
	Token string
}

// AuthMiddleware resolves the session cookie into an AuthResult.
type AuthMiddleware struct {
	sessions   *service.SessionManager
	cookieName string
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(sessions *service.SessionManager, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Resolve attaches an AuthResult to every request. It never rejects;
// pair it with RequireAuth on routes that demand identity.
func (m *AuthMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := AuthResult{}

		if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
			result.HadToken = true
			result.Token = cookie.Value

			session, err := m.sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				response.InternalError(w, "failed to validate session")
				return
			}
			if session != nil {
				result.Authenticated = true
				result.UserID = session.UserID
				result.SessionID = session.ID
			}
		}

		ctx := context.WithValue(r.Context(), authResultKey, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests whose AuthResult is not authenticated.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := GetAuth(r.Context()); !auth.Authenticated {
			response.Unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetAuth returns the AuthResult for the request; the zero value when
// Resolve did not run.
func GetAuth(ctx context.Context) AuthResult {
	result, _ := ctx.Value(authResultKey).(AuthResult)
	return result
}
