package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/httpx"
)

// SessionName is the cookie name carrying the encrypted session ID.
const SessionName = "campusmart_session"

// SessionEmailKey is the session value key holding the signed-in email.
const SessionEmailKey = "email"

// RequireAuth rejects requests without a valid session and puts the
// signed-in user's email and campus key on the request context.
func RequireAuth(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session")
				return
			}

			email, ok := session.Values[SessionEmailKey].(string)
			if !ok || email == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			key, err := campus.Resolve(email)
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), email, key)))
		})
	}
}
