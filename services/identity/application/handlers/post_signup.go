package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/errhttp"
	"github.com/campusmart/campusmart/pkg/httpx"
	pkgvalidator "github.com/campusmart/campusmart/pkg/validator"
	appsvcs "github.com/campusmart/campusmart/services/identity/application/services"
)

// SignUpRequest is the request body for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"  example:"alice@iitd.ac.in"`
	Password string `json:"password" validate:"required,min=8"  example:"s3cret-pass"`
} // @name SignUpRequest

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	Email      string `json:"email"       example:"alice@iitd.ac.in"`
	Campus     string `json:"campus"      example:"iitd-ac-in"`
	CampusName string `json:"campus_name" example:"IIT Delhi"`
} // @name SessionResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email domain is not a recognized college domain"`
} // @name ErrorResponse

// PostSignupHandler handles POST /auth/signup requests.
type PostSignupHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
}

// NewPostSignupHandler returns a PostSignupHandler backed by the given services.
func NewPostSignupHandler(svc *appsvcs.Services, store sessions.Store) *PostSignupHandler {
	return &PostSignupHandler{svc: svc, store: store}
}

// Execute registers a new account and opens a session.
//
//	@Summary		Sign up
//	@Description	Registers a student account. The email domain must belong to a
//	@Description	known institution or end in .edu or .ac.in.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignUpRequest	true	"Registration request"
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/signup [post]
func (h *PostSignupHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignUpRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Identity.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := openSession(w, r, h.store, account.Email); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	httpx.JSON(w, http.StatusCreated, sessionResponse(account.Email, account.Campus))
}

// openSession writes the session cookie for a freshly authenticated email.
func openSession(w http.ResponseWriter, r *http.Request, store sessions.Store, email string) error {
	session, err := store.Get(r, auth.SessionName)
	if err != nil {
		return err
	}
	session.Values[auth.SessionEmailKey] = email
	return session.Save(r, w)
}

func sessionResponse(email string, key campus.Key) SessionResponse {
	domain, _ := campus.Domain(email)
	return SessionResponse{
		Email:      email,
		Campus:     key.String(),
		CampusName: campus.FullName(domain),
	}
}
