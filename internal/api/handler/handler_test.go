package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

var fixedNow = time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

var testSession = &domain.Session{
	ID:        uuid.MustParse("6f1c2a8e-4b7d-4f3a-9c1e-2d5b8a7f0e11"),
	UserID:    42,
	CreatedAt: fixedNow.Add(-time.Hour),
	ExpiresAt: fixedNow.Add(23 * time.Hour),
}

var testCalendar = Calendar{
	Location:  time.UTC,
	WeekStart: time.Sunday,
	Clock:     func() time.Time { return fixedNow },
}

// newRequest monta uma requisição já autenticada, como se tivesse passado pelo AuthMiddleware
func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.WithSession(req.Context(), &domain.Claims{UserID: testSession.UserID}, testSession)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	decodeBody(t, rec, &apiErr)
	return apiErr
}

func entryAt(t time.Time, cost string, items int) *domain.SalesEntry {
	return &domain.SalesEntry{
		ID:         uuid.New(),
		OwnerID:    testSession.UserID,
		CreatedAt:  t,
		TotalItems: items,
		Cost:       decimal.RequireFromString(cost),
	}
}

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}
