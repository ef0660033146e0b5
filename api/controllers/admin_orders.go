package controllers

import (
	"net/http"

	"github.com/sivanaveen080/biryani-for-lunch/api/responses"
	"github.com/sivanaveen080/biryani-for-lunch/api/validators"
	"github.com/sivanaveen080/biryani-for-lunch/internal/admin"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminOrders lists the orders board.
func AdminOrders(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		orders, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"orders": orders})
	}
}

// AdminOrderStatus writes a new status onto an order row.
func AdminOrderStatus(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		orderID, err := validators.ParsePathInt64(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateOrderStatus(r.Context(), orderID, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"order_id": orderID, "status": payload.Status})
	}
}
