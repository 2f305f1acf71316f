package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// UpdateProfile altera o nome do usuário logado. Email e username são somente leitura.
func UpdateProfile(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.UpdateName(r.Context(), middleware.SessionFromContext(r.Context()), req.Name)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar perfil")
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}
