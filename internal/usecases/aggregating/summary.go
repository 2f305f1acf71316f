package aggregating

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

// NewBoundaries calcula o início do dia, da semana, do mês e do ano relativos a now.
// O início da semana é a ocorrência mais recente de weekStart à meia-noite.
func NewBoundaries(now time.Time, weekStart time.Weekday) domain.Boundaries {
	today := startOfDay(now)
	offset := (int(today.Weekday()) - int(weekStart) + daysPerWeek) % daysPerWeek

	return domain.Boundaries{
		StartOfToday: today,
		StartOfWeek:  today.AddDate(0, 0, -offset),
		StartOfMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		StartOfYear:  time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
	}
}

// Summarize soma o custo dos lançamentos criados a partir de cada limite
func Summarize(entries []*domain.SalesEntry, b domain.Boundaries) *domain.Summary {
	summary := &domain.Summary{
		Today: decimal.Zero,
		Week:  decimal.Zero,
		Month: decimal.Zero,
		Year:  decimal.Zero,
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		if !e.CreatedAt.Before(b.StartOfToday) {
			summary.Today = summary.Today.Add(e.Cost)
		}
		if !e.CreatedAt.Before(b.StartOfWeek) {
			summary.Week = summary.Week.Add(e.Cost)
		}
		if !e.CreatedAt.Before(b.StartOfMonth) {
			summary.Month = summary.Month.Add(e.Cost)
		}
		if !e.CreatedAt.Before(b.StartOfYear) {
			summary.Year = summary.Year.Add(e.Cost)
		}
	}

	return summary
}

// TotalSince soma o custo dos lançamentos criados a partir de since
func TotalSince(entries []*domain.SalesEntry, since time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e != nil && !e.CreatedAt.Before(since) {
			total = total.Add(e.Cost)
		}
	}
	return total
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	return startOfDay(t)
}

// ParseWeekday aceita o nome do dia em inglês ("sunday", "Mon", ...)
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}

	return time.Sunday, fmt.Errorf("dia da semana inválido: %q", s)
}
