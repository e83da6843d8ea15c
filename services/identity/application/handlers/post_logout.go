package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/httpx"
	appsvcs "github.com/campusmart/campusmart/services/identity/application/services"
)

// PostLogoutHandler handles POST /auth/logout requests.
type PostLogoutHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewPostLogoutHandler returns a PostLogoutHandler backed by the given services.
func NewPostLogoutHandler(svc *appsvcs.Services, store sessions.Store) *PostLogoutHandler {
	return &PostLogoutHandler{svc: svc, store: store}
}

// Execute ends the session. Always succeeds, even without a session cookie.
//
//	@Summary		Sign out
//	@Description	Deletes the server-side session and expires the cookie.
//	@Tags			auth
//	@Success		204
//	@Router			/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, auth.SessionName)
	if err == nil {
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed to end session")
			return
		}
	}

	h.svc.Identity.SignOut(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
