package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleError traduz os erros dos casos de uso para o código da API.
// Erros não classificados viram SRV_002, pois vêm do banco.
func handleError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallbackMsg)
			apiErrors.WriteError(w, authErr.Code, fallbackMsg, nil)
			return
		}
		// Senha errada e bloqueio são fluxo normal de login
		if authenticating.IsCredentialsError(err) {
			logger.Info(authErr.Error())
		} else {
			logger.Warn(authErr.Error())
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	var entryErr *recording.EntryError
	if errors.As(err, &entryErr) {
		logger.Warn(entryErr.Error())
		apiErrors.WriteError(w, entryErr.Code, entryErr.Error(), map[string]any{
			"field": entryErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNoSession):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Usuário não autenticado", nil)

	case errors.Is(err, profiling.ErrEmptyName), errors.Is(err, profiling.ErrNameTooLong):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
			"field": "name",
		})

	case errors.Is(err, profiling.ErrProfileNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	case errors.Is(err, aggregating.ErrInvalidGranularity), errors.Is(err, aggregating.ErrInvalidFilter):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logger.Error(fallbackMsg)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMsg, nil)
	}
}
