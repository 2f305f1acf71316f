package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity define a unidade de tempo usada para particionar os lançamentos
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Filtros do dashboard
const (
	FilterToday = "today"
	FilterWeek  = "week"
	FilterMonth = "month"
	FilterYear  = "year"
)

// Bucket é uma janela de tempo agregada para exibição em gráfico. Nunca é persistido.
type Bucket struct {
	Label string          `json:"name"`
	Sales decimal.Decimal `json:"sales"`
	Items int             `json:"items"`
}

// Summary contém os totais de custo desde o início do dia, semana, mês e ano
type Summary struct {
	Today decimal.Decimal `json:"today"`
	Week  decimal.Decimal `json:"week"`
	Month decimal.Decimal `json:"month"`
	Year  decimal.Decimal `json:"year"`
}

// Boundaries são os instantes de referência usados pelo Summary
type Boundaries struct {
	StartOfToday time.Time `json:"start_of_today"`
	StartOfWeek  time.Time `json:"start_of_week"`
	StartOfMonth time.Time `json:"start_of_month"`
	StartOfYear  time.Time `json:"start_of_year"`
}

type DashboardResponse struct {
	Filter      string      `json:"filter"`
	Granularity Granularity `json:"granularity"`
	Stats       *Summary    `json:"stats"`
	Chart       []Bucket    `json:"chart"`
	GeneratedAt time.Time   `json:"generated_at"`
}

type AnalyticsResponse struct {
	Weekly      []Bucket  `json:"weekly"`
	Monthly     []Bucket  `json:"monthly"`
	Yearly      []Bucket  `json:"yearly"`
	GeneratedAt time.Time `json:"generated_at"`
}

type AggregateResponse struct {
	Granularity Granularity `json:"granularity"`
	Buckets     []Bucket    `json:"buckets"`
	GeneratedAt time.Time   `json:"generated_at"`
}

type TodayTotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Since time.Time       `json:"since"`
}
