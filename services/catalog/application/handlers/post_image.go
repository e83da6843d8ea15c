package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/campusmart/campusmart/pkg/httpx"
)

// maxImageBytes caps an uploaded listing image at 5 MiB.
const maxImageBytes = 5 << 20

// ImageUploader stores raw image bytes and returns the object key to carry
// as the listing's image reference.
type ImageUploader interface {
	Upload(ctx context.Context, originalFilename, contentType string, data []byte) (string, error)
}

// ImageResolver turns a stored object key into a fetchable URL.
type ImageResolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// resolveImage maps a persisted image reference to what the client should
// render. Only object keys are presigned; pass-through refs (the placeholder,
// absolute URLs) are returned unchanged, as is the key when no resolver is
// configured or presigning fails.
func resolveImage(ctx context.Context, images ImageResolver, ref string) string {
	if images == nil || !strings.HasPrefix(ref, "listings/") {
		return ref
	}
	u, err := images.URL(ctx, ref)
	if err != nil {
		return ref
	}
	return u
}

// ImageUploadResponse carries the object key to submit as the draft's image.
type ImageUploadResponse struct {
	ImageRef string `json:"image_ref" example:"listings/7f3b1c2d.jpg"`
} // @name ImageUploadResponse

// PostImageHandler handles POST /listings/image requests.
type PostImageHandler struct {
	images ImageUploader
}

// NewPostImageHandler returns a PostImageHandler backed by the given uploader.
func NewPostImageHandler(images ImageUploader) *PostImageHandler {
	return &PostImageHandler{images: images}
}

// Execute stores an uploaded listing image and returns its object key.
//
//	@Summary		Upload a listing image
//	@Description	Accepts a multipart "image" part of at most 5 MiB and returns
//	@Description	the reference to submit in the listing draft's image field.
//	@Tags			listings
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image file"
//	@Success		201	{object}	ImageUploadResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/listings/image [post]
func (h *PostImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if h.images == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "image uploads are not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "missing or oversized image part")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	key, err := h.images.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	httpx.JSON(w, http.StatusCreated, ImageUploadResponse{ImageRef: key})
}
