package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

func TestNewBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		weekStart     time.Weekday
		expectedWeek  time.Time
		expectedToday time.Time
	}{
		{
			name:          "Quinta-feira com semana iniciando no domingo",
			now:           referenceNow,
			weekStart:     time.Sunday,
			expectedWeek:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expectedToday: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Quinta-feira com semana iniciando na segunda",
			now:           referenceNow,
			weekStart:     time.Monday,
			expectedWeek:  time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			expectedToday: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "O próprio dia de início da semana",
			now:           time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
			weekStart:     time.Sunday,
			expectedWeek:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expectedToday: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Semana atravessando a virada do mês",
			now:           time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
			weekStart:     time.Monday,
			expectedWeek:  time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
			expectedToday: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoundaries(tt.now, tt.weekStart)
			assert.Equal(t, tt.expectedToday, b.StartOfToday)
			assert.Equal(t, tt.expectedWeek, b.StartOfWeek)
			assert.Equal(t, time.Date(tt.now.Year(), tt.now.Month(), 1, 0, 0, 0, 0, time.UTC), b.StartOfMonth)
			assert.Equal(t, time.Date(tt.now.Year(), 1, 1, 0, 0, 0, 0, time.UTC), b.StartOfYear)
		})
	}
}

func TestSummarize(t *testing.T) {
	entries := []*domain.SalesEntry{
		entryAt(time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC), "10", 1),   // hoje
		entryAt(time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), "20", 1),   // esta semana
		entryAt(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), "30", 1),    // este mês
		entryAt(time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC), "40", 1),   // este ano
		entryAt(time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), "50", 1), // ano anterior
	}

	summary := Summarize(entries, NewBoundaries(referenceNow, time.Sunday))
	require.NotNil(t, summary)

	assert.Equal(t, "10", summary.Today.String())
	assert.Equal(t, "30", summary.Week.String())
	assert.Equal(t, "60", summary.Month.String())
	assert.Equal(t, "100", summary.Year.String())
}

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize(nil, NewBoundaries(referenceNow, time.Sunday))

	assert.Equal(t, "0", summary.Today.String())
	assert.Equal(t, "0", summary.Week.String())
	assert.Equal(t, "0", summary.Month.String())
	assert.Equal(t, "0", summary.Year.String())
}

func TestSummarize_MonotonicForNonNegativeCosts(t *testing.T) {
	// 01/03/2024 é sexta-feira: o início da semana (domingo 25/02) fica antes do início do mês
	nows := []time.Time{
		referenceNow,
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC),
	}

	entries := make([]*domain.SalesEntry, 0)
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 120; d++ {
		entries = append(entries, entryAt(start.AddDate(0, 0, d).Add(13*time.Hour), "1.25", 1))
	}

	for _, now := range nows {
		t.Run(now.Format(time.DateOnly), func(t *testing.T) {
			summary := Summarize(entries, NewBoundaries(now, time.Sunday))

			assert.True(t, summary.Today.LessThanOrEqual(summary.Year))
			assert.True(t, summary.Month.LessThanOrEqual(summary.Year))
			assert.True(t, summary.Today.LessThanOrEqual(summary.Week))
			assert.True(t, summary.Today.LessThanOrEqual(summary.Month))
		})
	}
}

func TestTotalSince(t *testing.T) {
	entries := []*domain.SalesEntry{
		entryAt(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), "2.5", 1),
		entryAt(time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC), "100", 1),
		entryAt(time.Date(2024, 3, 14, 18, 0, 0, 0, time.UTC), "2.5", 1),
	}

	total := TotalSince(entries, StartOfDay(referenceNow))
	assert.Equal(t, "5", total.String())
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"":          time.Sunday,
		"sunday":    time.Sunday,
		"Monday":    time.Monday,
		" sat ":     time.Saturday,
		"WEDNESDAY": time.Wednesday,
	}

	for input, expected := range tests {
		d, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, d)
	}

	_, err := ParseWeekday("domingo")
	assert.Error(t, err)
}
