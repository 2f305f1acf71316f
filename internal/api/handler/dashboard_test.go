package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func dashboardEntries() []*domain.SalesEntry {
	return []*domain.SalesEntry{
		entryAt(time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC), "10", 1), // hoje
		entryAt(time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC), "20", 2), // esta semana
		entryAt(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), "30", 3),  // este mês
		entryAt(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), "40", 4),  // este ano
	}
}

func TestDashboard(t *testing.T) {
	tests := []struct {
		filter              string
		expectedGranularity domain.Granularity
		expectedBuckets     int
	}{
		{"", domain.GranularityHour, 24},
		{"today", domain.GranularityHour, 24},
		{"week", domain.GranularityDay, 7},
		{"month", domain.GranularityWeek, 4},
		{"year", domain.GranularityMonth, 12},
	}

	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRecorder := mocks.NewMockRecorder(ctrl)
			mockRecorder.EXPECT().ListForAggregation(gomock.Any(), testSession).Return(dashboardEntries(), nil)

			rec := httptest.NewRecorder()
			Dashboard(mockRecorder, testCalendar).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/dashboard?filter="+tt.filter, ""))

			require.Equal(t, http.StatusOK, rec.Code)

			var resp domain.DashboardResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.expectedGranularity, resp.Granularity)
			assert.Len(t, resp.Chart, tt.expectedBuckets)

			require.NotNil(t, resp.Stats)
			assert.Equal(t, "10", resp.Stats.Today.String())
			assert.Equal(t, "30", resp.Stats.Week.String())
			assert.Equal(t, "60", resp.Stats.Month.String())
			assert.Equal(t, "100", resp.Stats.Year.String())
		})
	}
}

func TestDashboard_InvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecorder := mocks.NewMockRecorder(ctrl)

	rec := httptest.NewRecorder()
	Dashboard(mockRecorder, testCalendar).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/dashboard?filter=decade", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestDashboard_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecorder := mocks.NewMockRecorder(ctrl)
	mockRecorder.EXPECT().ListForAggregation(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	rec := httptest.NewRecorder()
	Dashboard(mockRecorder, testCalendar).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/dashboard", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
}

func TestAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRecorder := mocks.NewMockRecorder(ctrl)
	mockRecorder.EXPECT().ListForAggregation(gomock.Any(), testSession).Return(dashboardEntries(), nil)

	rec := httptest.NewRecorder()
	Analytics(mockRecorder, testCalendar).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/analytics", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AnalyticsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Weekly, 7)
	require.Len(t, resp.Monthly, 4)
	require.Len(t, resp.Yearly, 12)

	assert.Equal(t, "10", resp.Weekly[6].Sales.String())
	assert.Equal(t, "Jan", resp.Yearly[0].Label)
	assert.Equal(t, 4, resp.Yearly[0].Items)
	assert.Equal(t, "60", resp.Yearly[2].Sales.String())
}
