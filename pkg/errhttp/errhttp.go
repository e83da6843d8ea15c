// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/httpx"
	catalogdomain "github.com/campusmart/campusmart/services/catalog/domain"
	identitydomain "github.com/campusmart/campusmart/services/identity/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrListingNotFound),
		errors.Is(err, identitydomain.ErrAccountNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrInvalidDraft),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidCondition),
		errors.Is(err, catalogdomain.ErrInvalidContact),
		errors.Is(err, campus.ErrInvalidEmail):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, catalogdomain.ErrNotSeller),
		errors.Is(err, identitydomain.ErrDomainNotAllowed):
		return http.StatusForbidden // 403
	case errors.Is(err, identitydomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, identitydomain.ErrEmailTaken):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
