package handler

import (
	"net/http"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

// Dashboard devolve os quatro totais e o gráfico do filtro escolhido.
// Cada requisição busca os lançamentos de novo, sem cache.
func Dashboard(service recording.Recorder, calendar Calendar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		if filter == "" {
			filter = domain.FilterToday
		}

		granularity, err := aggregating.GranularityForFilter(filter)
		if err != nil {
			handleError(w, r, err, "Filtro inválido")
			return
		}

		entries, err := service.ListForAggregation(r.Context(), middleware.SessionFromContext(r.Context()))
		if err != nil {
			handleError(w, r, err, "Erro ao buscar lançamentos")
			return
		}

		now := calendar.Now()
		chart, err := aggregating.Aggregate(entries, granularity, now)
		if err != nil {
			handleError(w, r, err, "Erro ao agregar lançamentos")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.DashboardResponse{
			Filter:      filter,
			Granularity: granularity,
			Stats:       aggregating.Summarize(entries, aggregating.NewBoundaries(now, calendar.WeekStart)),
			Chart:       chart,
			GeneratedAt: now,
		})
	}
}

// Analytics devolve os três gráficos: semana por dia, mês por semana e ano por mês
func Analytics(service recording.Recorder, calendar Calendar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListForAggregation(r.Context(), middleware.SessionFromContext(r.Context()))
		if err != nil {
			handleError(w, r, err, "Erro ao buscar lançamentos")
			return
		}

		now := calendar.Now()
		resp := domain.AnalyticsResponse{GeneratedAt: now}

		charts := []struct {
			granularity domain.Granularity
			target      *[]domain.Bucket
		}{
			{domain.GranularityDay, &resp.Weekly},
			{domain.GranularityWeek, &resp.Monthly},
			{domain.GranularityMonth, &resp.Yearly},
		}

		for _, chart := range charts {
			buckets, err := aggregating.Aggregate(entries, chart.granularity, now)
			if err != nil {
				handleError(w, r, err, "Erro ao agregar lançamentos")
				return
			}
			*chart.target = buckets
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}
