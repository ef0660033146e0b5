package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sivanaveen080/biryani-for-lunch/api/middleware"
	"github.com/sivanaveen080/biryani-for-lunch/api/responses"
	"github.com/sivanaveen080/biryani-for-lunch/api/validators"
	cartsvc "github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

// CartFetch returns the session's cart.
func CartFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := storeFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newView(store))
	}
}

// CartAddItem increments the item by one, inserting it on first add.
func CartAddItem(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := storeFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.AddOne(payload.Name, payload.UnitPrice)
		responses.WriteSuccess(w, newView(store))
	}
}

// CartSetQuantity overwrites the quantity for the named item.
func CartSetQuantity(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := storeFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		name := validators.SanitizeString(chi.URLParam(r, "name"), 128)
		if name == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item name required"))
			return
		}

		var payload SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.SetQuantity(name, payload.UnitPrice, payload.Quantity)
		responses.WriteSuccess(w, newView(store))
	}
}

// CartClear empties the session's cart.
func CartClear(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := storeFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear()
		responses.WriteSuccess(w, newView(store))
	}
}

func storeFromContext(r *http.Request) (*cartsvc.Store, error) {
	store := middleware.CartFromContext(r.Context())
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing")
	}
	return store, nil
}
