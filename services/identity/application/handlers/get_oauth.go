package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusmart/campusmart/pkg/config"
	"github.com/campusmart/campusmart/pkg/httpx"
	appsvcs "github.com/campusmart/campusmart/services/identity/application/services"
)

// GetOAuthHandler handles GET /auth/oauth/{provider} requests.
type GetOAuthHandler struct {
	svc *appsvcs.Services
	cfg *config.Config
}

// NewGetOAuthHandler returns a GetOAuthHandler backed by the given services and config.
func NewGetOAuthHandler(svc *appsvcs.Services, cfg *config.Config) *GetOAuthHandler {
	return &GetOAuthHandler{svc: svc, cfg: cfg}
}

// Execute redirects the browser to the provider's consent screen.
//
//	@Summary		OAuth sign-in
//	@Description	Starts browser-redirect sign-in with the named provider.
//	@Tags			auth
//	@Param			provider	path	string	true	"OAuth provider (google)"
//	@Success		302
//	@Failure		400	{object}	ErrorResponse
//	@Router			/auth/oauth/{provider} [get]
func (h *GetOAuthHandler) Execute(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	u, err := h.svc.Identity.OAuthURL(provider, h.cfg.OAuthGoogleClient, h.cfg.OAuthRedirectBase)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unsupported or unconfigured oauth provider")
		return
	}

	http.Redirect(w, r, u, http.StatusFound)
}
