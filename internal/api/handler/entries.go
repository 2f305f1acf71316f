package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// FormValue aceita número ou texto no JSON e guarda o valor cru para a validação
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	*v = FormValue(data)
	return nil
}

type CreateEntryRequest struct {
	UpperItems FormValue `json:"upper_items"`
	LowerItems FormValue `json:"lower_items"`
	TotalItems FormValue `json:"total_items"`
	Cost       FormValue `json:"cost"`
}

func (req CreateEntryRequest) form() domain.EntryForm {
	return domain.EntryForm{
		UpperItems: string(req.UpperItems),
		LowerItems: string(req.LowerItems),
		TotalItems: string(req.TotalItems),
		Cost:       string(req.Cost),
	}
}

func CreateEntry(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.Create(r.Context(), middleware.SessionFromContext(r.Context()), req.form())
		if err != nil {
			handleError(w, r, err, "Erro ao salvar lançamento")
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}

// ListEntries retorna a tabela paginada, do lançamento mais recente para o mais antigo
func ListEntries(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page, err := utils.ParsePositiveInt(query.Get("page"), 1)
		if err != nil {
			handleError(w, r, recording.NewEntryError(recording.ErrInvalidPage, apiErrors.ErrInvalidFormat, "page"), "Erro ao buscar lançamentos")
			return
		}

		perPage, err := utils.ParsePositiveInt(query.Get("per_page"), 0)
		if err != nil {
			handleError(w, r, recording.NewEntryError(recording.ErrInvalidPage, apiErrors.ErrInvalidFormat, "per_page"), "Erro ao buscar lançamentos")
			return
		}

		result, err := service.ListPage(r.Context(), middleware.SessionFromContext(r.Context()), page, perPage)
		if err != nil {
			handleError(w, r, err, "Erro ao buscar lançamentos")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func TodayTotal(service recording.Recorder, calendar Calendar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := calendar.Now()

		total, err := service.TodayTotal(r.Context(), middleware.SessionFromContext(r.Context()), now)
		if err != nil {
			handleError(w, r, err, "Erro ao calcular total do dia")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.TodayTotalResponse{
			Total: total,
			Since: aggregating.StartOfDay(now),
		})
	}
}

// AggregateEntries retorna os buckets brutos de uma granularidade, opcionalmente filtrando por período
func AggregateEntries(service recording.Recorder, calendar Calendar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		raw := query.Get("granularity")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "granularity é obrigatório", nil)
			return
		}

		granularity, err := aggregating.ParseGranularity(raw)
		if err != nil {
			handleError(w, r, err, "Granularidade inválida")
			return
		}

		startDate, err := utils.ParseDate(query.Get("start_date"), calendar.Location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"), calendar.Location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		now := calendar.Now()
		session := middleware.SessionFromContext(r.Context())

		var entries []*domain.SalesEntry
		if startDate == nil && endDate == nil {
			entries, err = service.ListForAggregation(r.Context(), session)
		} else {
			from, to := time.Time{}, now
			if startDate != nil {
				from = *startDate
			}
			if endDate != nil {
				to = *endDate
			}
			entries, err = service.ListRange(r.Context(), session, from, to)
		}
		if err != nil {
			handleError(w, r, err, "Erro ao buscar lançamentos")
			return
		}

		buckets, err := aggregating.Aggregate(entries, granularity, now)
		if err != nil {
			handleError(w, r, err, "Erro ao agregar lançamentos")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"granularity": granularity,
			"entries":     len(entries),
		}).Debug("entries: agregação concluída")

		writeJSON(w, r, http.StatusOK, domain.AggregateResponse{
			Granularity: granularity,
			Buckets:     buckets,
			GeneratedAt: now,
		})
	}
}
