package controllers

import (
	"net/http"

	"github.com/sivanaveen080/biryani-for-lunch/api/responses"
	"github.com/sivanaveen080/biryani-for-lunch/api/validators"
	"github.com/sivanaveen080/biryani-for-lunch/internal/catalog"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

// CatalogList serves the storefront grid, filtered by the optional tag query.
func CatalogList(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		tag := validators.SanitizeString(r.URL.Query().Get("tag"), 64)
		responses.WriteSuccess(w, map[string]any{
			"products": svc.Filter(tag),
		})
	}
}
