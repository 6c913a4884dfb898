package handlers

import (
	"net/http"
	"strconv"

	"github.com/factura-dev/invoicing-api/internal/api/middleware"
	"github.com/factura-dev/invoicing-api/internal/models"
)

// pageParam reads the page query parameter, defaulting to the first page on
// anything unusable.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func claimsFromContext(r *http.Request) (*models.Claims, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)

	return claims, ok
}
