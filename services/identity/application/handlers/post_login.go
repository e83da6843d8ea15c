package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/errhttp"
	"github.com/campusmart/campusmart/pkg/httpx"
	pkgvalidator "github.com/campusmart/campusmart/pkg/validator"
	appsvcs "github.com/campusmart/campusmart/services/identity/application/services"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"alice@iitd.ac.in"`
	Password string `json:"password" validate:"required"       example:"s3cret-pass"`
} // @name LoginRequest

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services.
func NewPostLoginHandler(svc *appsvcs.Services, store sessions.Store) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, store: store}
}

// Execute checks credentials and opens a session.
//
//	@Summary		Sign in
//	@Description	Password sign-in. Unknown emails and wrong passwords return the
//	@Description	same 401 so the endpoint never reveals whether an account exists.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	SessionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Identity.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := openSession(w, r, h.store, account.Email); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	httpx.JSON(w, http.StatusOK, sessionResponse(account.Email, account.Campus))
}
