package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSessionSweep = "session-sweep"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SessionSweepService *scheduler.SessionSweepService
	ManualRunEnabled    bool
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !services.ManualRunEnabled {
			apiErrors.WriteError(w, apiErrors.ErrForbidden, "Execução manual de cron jobs desabilitada", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSessionSweep:
			if services.SessionSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}

			if !services.SessionSweepService.TriggerManualSync() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: session-sweep", nil)
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SessionSweepService != nil {
			status[CronJobTypeSessionSweep] = services.SessionSweepService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
