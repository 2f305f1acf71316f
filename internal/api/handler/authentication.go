package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SignUp(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.SignUp(r.Context(), req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar usuário")
			return
		}

		log.ForContext(r.Context()).WithField("user_id", user.ID).Info("auth: usuário cadastrado")
		writeJSON(w, r, http.StatusCreated, user)
	}
}

func SignIn(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			handleError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func SignOut(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.SignOut(r.Context(), middleware.SessionFromContext(r.Context())); err != nil {
			handleError(w, r, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := service.CurrentUser(r.Context(), middleware.SessionFromContext(r.Context()))
		if err != nil {
			handleError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
