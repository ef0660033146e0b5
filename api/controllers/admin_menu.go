package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sivanaveen080/biryani-for-lunch/api/responses"
	"github.com/sivanaveen080/biryani-for-lunch/api/validators"
	"github.com/sivanaveen080/biryani-for-lunch/internal/admin"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

type menuAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// AdminMenu lists the remote menu rows.
func AdminMenu(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		menu, err := svc.ListMenu(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"menu": menu})
	}
}

// AdminMenuAvailability toggles an item on the remote menu and mirrors the
// change into the storefront cache.
func AdminMenuAvailability(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		itemName := validators.SanitizeString(chi.URLParam(r, "itemName"), 128)
		if itemName == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item name required"))
			return
		}

		var payload menuAvailabilityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetAvailability(r.Context(), itemName, *payload.Available); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"item_name": itemName, "available": *payload.Available})
	}
}
