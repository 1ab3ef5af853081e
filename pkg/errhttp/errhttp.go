// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shoppingcart/pkg/httpx"
	cartdomain "github.com/ghuser/shoppingcart/services/cart/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; their message
// is hidden when isProduction is set.
func WriteError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, cartdomain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
