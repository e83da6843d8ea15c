package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/errhttp"
	"github.com/campusmart/campusmart/pkg/httpx"
	pkgvalidator "github.com/campusmart/campusmart/pkg/validator"
	appsvcs "github.com/campusmart/campusmart/services/catalog/application/services"
)

// SetSoldRequest is the request body for PATCH /listings/{id}/sold.
type SetSoldRequest struct {
	Sold *bool `json:"sold" validate:"required" example:"true"`
} // @name SetSoldRequest

// SetSoldResponse confirms the new sold state.
type SetSoldResponse struct {
	ID   uuid.UUID `json:"id"   example:"123e4567-e89b-12d3-a456-426614174000"`
	Sold bool      `json:"sold" example:"true"`
} // @name SetSoldResponse

// PatchSoldHandler handles PATCH /listings/{id}/sold requests.
type PatchSoldHandler struct {
	svc *appsvcs.Services
}

// NewPatchSoldHandler returns a PatchSoldHandler backed by the given services.
func NewPatchSoldHandler(svc *appsvcs.Services) *PatchSoldHandler {
	return &PatchSoldHandler{svc: svc}
}

// Execute marks a listing as sold (or available again).
//
//	@Summary		Set sold state
//	@Description	Flips the sold flag. Only the listing's seller may do this;
//	@Description	the check is enforced against the stored seller email, not client input.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Listing ID"
//	@Param			request	body		SetSoldRequest	true	"New sold state"
//	@Success		200		{object}	SetSoldResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/listings/{id}/sold [patch]
func (h *PatchSoldHandler) Execute(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SetSoldRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Catalog.SetSold(r.Context(), id, email, *req.Sold); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SetSoldResponse{ID: id, Sold: *req.Sold})
}
