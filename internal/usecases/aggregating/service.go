// Package aggregating agrupa lançamentos já carregados em janelas de tempo para gráficos e totais.
// As funções são puras: recebem os lançamentos e o instante de referência e não guardam estado.
package aggregating

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

var (
	ErrInvalidGranularity = errors.New("granularidade inválida")
	ErrInvalidFilter      = errors.New("filtro inválido")
)

const (
	hoursPerDay   = 24
	daysPerWeek   = 7
	weeksInWindow = 4
	monthsPerYear = 12
)

// ParseGranularity converte o texto recebido na API para uma Granularity
func ParseGranularity(s string) (domain.Granularity, error) {
	switch g := domain.Granularity(s); g {
	case domain.GranularityHour, domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
}

// GranularityForFilter mapeia o filtro do dashboard para a granularidade do gráfico
func GranularityForFilter(filter string) (domain.Granularity, error) {
	switch filter {
	case domain.FilterToday:
		return domain.GranularityHour, nil
	case domain.FilterWeek:
		return domain.GranularityDay, nil
	case domain.FilterMonth:
		return domain.GranularityWeek, nil
	case domain.FilterYear:
		return domain.GranularityMonth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
}

// BucketCount retorna quantos buckets uma granularidade sempre produz
func BucketCount(g domain.Granularity) int {
	switch g {
	case domain.GranularityHour:
		return hoursPerDay
	case domain.GranularityDay:
		return daysPerWeek
	case domain.GranularityWeek:
		return weeksInWindow
	case domain.GranularityMonth:
		return monthsPerYear
	}
	return 0
}

// Aggregate particiona os lançamentos em buckets da granularidade pedida, em ordem cronológica.
// Todo o cálculo de calendário usa o fuso de now.
func Aggregate(entries []*domain.SalesEntry, g domain.Granularity, now time.Time) ([]domain.Bucket, error) {
	switch g {
	case domain.GranularityHour:
		return byHour(entries, now), nil
	case domain.GranularityDay:
		return byDay(entries, now), nil
	case domain.GranularityWeek:
		return byWeek(entries, now), nil
	case domain.GranularityMonth:
		return byMonth(entries, now), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, g)
}

func byHour(entries []*domain.SalesEntry, now time.Time) []domain.Bucket {
	buckets := newBuckets(hoursPerDay, func(i int) string {
		return fmt.Sprintf("%d:00", i)
	})

	today := dateOf(now)
	for _, e := range entries {
		if e == nil {
			continue
		}
		t := e.CreatedAt.In(now.Location())
		if dateOf(t) != today {
			continue
		}
		add(&buckets[t.Hour()], e)
	}

	return buckets
}

func byDay(entries []*domain.SalesEntry, now time.Time) []domain.Bucket {
	today := startOfDay(now)
	first := today.AddDate(0, 0, -(daysPerWeek - 1))

	buckets := newBuckets(daysPerWeek, func(i int) string {
		return first.AddDate(0, 0, i).Format("Mon")
	})

	index := make(map[calendarDate]int, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		index[dateOf(first.AddDate(0, 0, i))] = i
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		i, ok := index[dateOf(e.CreatedAt.In(now.Location()))]
		if !ok {
			continue
		}
		add(&buckets[i], e)
	}

	return buckets
}

// byWeek divide os últimos 28 dias de calendário (hoje incluso) em 4 intervalos [início, fim)
func byWeek(entries []*domain.SalesEntry, now time.Time) []domain.Bucket {
	end := startOfDay(now).AddDate(0, 0, 1)
	starts := make([]time.Time, weeksInWindow+1)
	for i := 0; i <= weeksInWindow; i++ {
		starts[i] = end.AddDate(0, 0, -daysPerWeek*(weeksInWindow-i))
	}

	buckets := newBuckets(weeksInWindow, func(i int) string {
		return fmt.Sprintf("Week %d", i+1)
	})

	for _, e := range entries {
		if e == nil {
			continue
		}
		t := e.CreatedAt.In(now.Location())
		for i := 0; i < weeksInWindow; i++ {
			if !t.Before(starts[i]) && t.Before(starts[i+1]) {
				add(&buckets[i], e)
				break
			}
		}
	}

	return buckets
}

func byMonth(entries []*domain.SalesEntry, now time.Time) []domain.Bucket {
	buckets := newBuckets(monthsPerYear, func(i int) string {
		return time.Month(i + 1).String()[:3]
	})

	for _, e := range entries {
		if e == nil {
			continue
		}
		t := e.CreatedAt.In(now.Location())
		if t.Year() != now.Year() {
			continue
		}
		add(&buckets[int(t.Month())-1], e)
	}

	return buckets
}

func newBuckets(n int, label func(i int) string) []domain.Bucket {
	buckets := make([]domain.Bucket, n)
	for i := range buckets {
		buckets[i] = domain.Bucket{
			Label: label(i),
			Sales: decimal.Zero,
		}
	}
	return buckets
}

func add(b *domain.Bucket, e *domain.SalesEntry) {
	b.Sales = b.Sales.Add(e.Cost)
	b.Items += e.TotalItems
}

type calendarDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) calendarDate {
	y, m, d := t.Date()
	return calendarDate{year: y, month: m, day: d}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
