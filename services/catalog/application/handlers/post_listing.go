package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/errhttp"
	"github.com/campusmart/campusmart/pkg/httpx"
	pkgvalidator "github.com/campusmart/campusmart/pkg/validator"
	appsvcs "github.com/campusmart/campusmart/services/catalog/application/services"
)

// CreateListingRequest is the request body for POST /listings.
type CreateListingRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=100"  example:"Engineering Mechanics Textbook"`
	Description string `json:"description" validate:"required,min=1,max=500"  example:"Barely used, 3rd edition"`
	Price       int64  `json:"price"       validate:"gte=0"                   example:"450"`
	Category    string `json:"category"    validate:"required"                example:"Textbooks"`
	Condition   string `json:"condition"   validate:"required"                example:"Good"`
	SellerName  string `json:"seller_name" validate:"required,min=1,max=100"  example:"Alice"`
	Contact     string `json:"contact"     validate:"required,whatsapp"       example:"+919876543210"`
	Image       string `json:"image"       validate:"omitempty,max=512"       example:"listings/7f3b.jpg"`
} // @name CreateListingRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"listing not found"`
} // @name ErrorResponse

// PostListingHandler handles POST /listings requests.
type PostListingHandler struct {
	svc    *appsvcs.Services
	images ImageResolver
}

// NewPostListingHandler returns a PostListingHandler backed by the given
// services. A nil resolver leaves image references unresolved.
func NewPostListingHandler(svc *appsvcs.Services, images ImageResolver) *PostListingHandler {
	return &PostListingHandler{svc: svc, images: images}
}

// Execute creates a new listing for the signed-in seller.
//
//	@Summary		Post a listing
//	@Description	Validates the draft and publishes it to the seller's campus feed.
//	@Description	All field failures are reported together; nothing is saved unless every field passes.
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateListingRequest	true	"Listing draft"
//	@Success		201		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/listings [post]
func (h *PostListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.EmailFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateListingRequest](w, r)
	if !ok {
		return
	}

	listing, err := h.svc.Catalog.Post(r.Context(), email, appsvcs.Draft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		SellerName:  req.SellerName,
		Contact:     req.Contact,
		ImageRef:    req.Image,
	})
	if err != nil {
		var draftErr *appsvcs.DraftError
		if errors.As(err, &draftErr) {
			httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "Validation failed",
				"fields": draftErr.Fields,
			})
			return
		}
		errhttp.WriteError(w, err)
		return
	}

	resp := toListingResponse(listing, email, time.Now().UTC())
	resp.Image = resolveImage(r.Context(), h.images, listing.ImageRef)
	httpx.JSON(w, http.StatusCreated, resp)
}
