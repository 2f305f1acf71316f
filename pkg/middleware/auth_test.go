package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		claims := ClaimsFromContext(r.Context())
		if session == nil || claims == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("X-Session", session.ID.String())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    7,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	claims := &domain.Claims{UserID: 7, UserEmail: "ana@example.com"}

	tests := []struct {
		name           string
		path           string
		header         string
		setupMock      func(m *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Sem header Authorization",
			path:           "/v1/entries",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Header sem prefixo Bearer",
			path:           "/v1/entries",
			header:         "Token abc",
			setupMock:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Sessão encerrada",
			path:   "/v1/entries",
			header: "Bearer revoked",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken(gomock.Any(), "revoked").Return(nil, nil,
					authenticating.NewAuthError(authenticating.ErrSessionNotFound, apiErrors.ErrSessionNotFound, "Sessão encerrada"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrSessionNotFound,
		},
		{
			name:   "Erro inesperado na validação",
			path:   "/v1/entries",
			header: "Bearer boom",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken(gomock.Any(), "boom").Return(nil, nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:   "Token válido injeta a sessão",
			path:   "/v1/entries",
			header: "Bearer good",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken(gomock.Any(), "good").Return(claims, session, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAuth := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(mockAuth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(mockAuth)(sessionEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, session.ID.String(), rec.Header().Get("X-Session"))
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	handler := RequireSession()(sessionEcho())

	t.Run("Sem sessão", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrSessionNotFound)
	})

	t.Run("Com sessão", func(t *testing.T) {
		session := &domain.Session{ID: uuid.New(), UserID: 1}
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = req.WithContext(WithSession(req.Context(), &domain.Claims{UserID: 1}, session))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, session.ID.String(), rec.Header().Get("X-Session"))
	})
}
