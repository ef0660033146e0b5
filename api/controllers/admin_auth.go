package controllers

import (
	"net/http"
	"strings"

	"github.com/sivanaveen080/biryani-for-lunch/api/responses"
	"github.com/sivanaveen080/biryani-for-lunch/api/validators"
	"github.com/sivanaveen080/biryani-for-lunch/internal/admin"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
)

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges console credentials for a session token.
func AdminLogin(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(admin.Credentials{
			Username: payload.Username,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, session)
	}
}

// AdminLogout revokes the presented session token.
func AdminLogout(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		token := strings.TrimSpace(r.Header.Get("Authorization"))
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		svc.Logout(token)

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}
