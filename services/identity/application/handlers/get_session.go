package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/httpx"
)

// SessionStateResponse is the payload for GET /auth/session.
// When Authenticated is false the other fields are empty.
type SessionStateResponse struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Email         string `json:"email,omitempty"       example:"alice@iitd.ac.in"`
	Campus        string `json:"campus,omitempty"      example:"iitd-ac-in"`
	CampusName    string `json:"campus_name,omitempty" example:"IIT Delhi"`
} // @name SessionStateResponse

// GetSessionHandler handles GET /auth/session requests.
type GetSessionHandler struct {
	store sessions.Store
}

// NewGetSessionHandler returns a GetSessionHandler backed by the given session store.
func NewGetSessionHandler(store sessions.Store) *GetSessionHandler {
	return &GetSessionHandler{store: store}
}

// Execute reports the current session state. Always 200; an expired or
// missing cookie simply yields authenticated=false.
//
//	@Summary		Session state
//	@Description	Returns the signed-in user's email and campus, or authenticated=false.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	SessionStateResponse
//	@Router			/auth/session [get]
func (h *GetSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, auth.SessionName)
	if err != nil {
		httpx.JSON(w, http.StatusOK, SessionStateResponse{Authenticated: false})
		return
	}

	email, ok := session.Values[auth.SessionEmailKey].(string)
	if !ok || email == "" {
		httpx.JSON(w, http.StatusOK, SessionStateResponse{Authenticated: false})
		return
	}

	key, err := campus.Resolve(email)
	if err != nil {
		httpx.JSON(w, http.StatusOK, SessionStateResponse{Authenticated: false})
		return
	}
	domain, _ := campus.Domain(email)

	httpx.JSON(w, http.StatusOK, SessionStateResponse{
		Authenticated: true,
		Email:         email,
		Campus:        key.String(),
		CampusName:    campus.FullName(domain),
	})
}
