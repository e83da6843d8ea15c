package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/errhttp"
	"github.com/campusmart/campusmart/pkg/httpx"
	appsvcs "github.com/campusmart/campusmart/services/catalog/application/services"
)

// ContactResponse carries the WhatsApp deep link for a listing.
type ContactResponse struct {
	URL string `json:"url" example:"https://wa.me/919876543210?text=Hi%20Alice..."`
} // @name ContactResponse

// GetContactHandler handles GET /listings/{id}/contact requests.
type GetContactHandler struct {
	svc *appsvcs.Services
}

// NewGetContactHandler returns a GetContactHandler backed by the given services.
func NewGetContactHandler(svc *appsvcs.Services) *GetContactHandler {
	return &GetContactHandler{svc: svc}
}

// Execute returns a WhatsApp deep link pre-filled with an inquiry message.
//
//	@Summary		Contact seller
//	@Description	Returns a wa.me link for the listing's seller. Sold listings,
//	@Description	the viewer's own listings, and other campuses' listings return 404.
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"Listing ID"
//	@Success		200	{object}	ContactResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/listings/{id}/contact [get]
func (h *GetContactHandler) Execute(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	viewer, _ := auth.CampusFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	url, err := h.svc.Catalog.ContactLink(r.Context(), id, email, viewer)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ContactResponse{URL: url})
}
