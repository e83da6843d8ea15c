package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/campusmart/campusmart/pkg/auth"
	"github.com/campusmart/campusmart/pkg/httpx"
	appsvcs "github.com/campusmart/campusmart/services/catalog/application/services"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
	domainsvcs "github.com/campusmart/campusmart/services/catalog/domain/services"
)

// ListingResponse is one listing card in the feed.
type ListingResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Title       string    `json:"title"       example:"Engineering Mechanics Textbook"`
	Description string    `json:"description" example:"Barely used, 3rd edition"`
	Price       int64     `json:"price"       example:"450"`
	Category    string    `json:"category"    example:"Textbooks"`
	Condition   string    `json:"condition"   example:"Good"`
	SellerName  string    `json:"seller_name" example:"Alice"`
	Image       string    `json:"image"       example:"/placeholder.svg"`
	Sold        bool      `json:"sold"        example:"false"`
	Age         string    `json:"age"         example:"3 days ago"`
	Own         bool      `json:"own"         example:"false"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name ListingResponse

// ListingsResponse is the feed payload for GET /listings.
type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total" example:"12"`
} // @name ListingsResponse

// GetListingsHandler handles GET /listings requests.
type GetListingsHandler struct {
	svc    *appsvcs.Services
	images ImageResolver
}

// NewGetListingsHandler returns a GetListingsHandler backed by the given
// services. A nil resolver leaves image references unresolved.
func NewGetListingsHandler(svc *appsvcs.Services, images ImageResolver) *GetListingsHandler {
	return &GetListingsHandler{svc: svc, images: images}
}

// Execute returns the viewer's campus feed, filtered by the query parameters.
//
//	@Summary		List campus listings
//	@Description	Returns listings for the signed-in user's campus, newest first.
//	@Description	All filters combine conjunctively; omitted filters match everything.
//	@Tags			listings
//	@Produce		json
//	@Param			search			query		string	false	"Case-insensitive substring match on title and description"
//	@Param			category		query		string	false	"Exact category, or All"
//	@Param			price_bucket	query		string	false	"Price range label, or All"
//	@Success		200	{object}	ListingsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/listings [get]
func (h *GetListingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.CampusFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	viewerEmail, _ := auth.EmailFromContext(r.Context())

	q := r.URL.Query()
	cfg := domainsvcs.FilterConfig{
		SearchText:  q.Get("search"),
		Category:    q.Get("category"),
		PriceBucket: q.Get("price_bucket"),
	}

	listings, err := h.svc.Catalog.Feed(r.Context(), viewer, cfg)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to load listings")
		return
	}

	now := time.Now().UTC()
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp := toListingResponse(l, viewerEmail, now)
		resp.Image = resolveImage(r.Context(), h.images, l.ImageRef)
		out = append(out, resp)
	}
	httpx.JSON(w, http.StatusOK, ListingsResponse{Listings: out, Total: len(out)})
}

func toListingResponse(l *models.Listing, viewerEmail string, now time.Time) ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    string(l.Category),
		Condition:   string(l.Condition),
		SellerName:  l.SellerName,
		Image:       l.ImageRef,
		Sold:        l.Sold,
		Age:         l.Age(now),
		Own:         l.OwnedBy(viewerEmail),
		CreatedAt:   l.CreatedAt,
	}
}
