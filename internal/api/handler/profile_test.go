package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling/mocks"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockProfiler)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Nome atualizado",
			body: `{"name":"Ana Maria"}`,
			setupMock: func(m *mocks.MockProfiler) {
				m.EXPECT().UpdateName(gomock.Any(), testSession, "Ana Maria").Return(&domain.User{ID: 42, Name: "Ana Maria"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Nome vazio",
			body: `{"name":"  "}`,
			setupMock: func(m *mocks.MockProfiler) {
				m.EXPECT().UpdateName(gomock.Any(), testSession, "  ").Return(nil, profiling.ErrEmptyName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Perfil removido",
			body: `{"name":"Ana"}`,
			setupMock: func(m *mocks.MockProfiler) {
				m.EXPECT().UpdateName(gomock.Any(), testSession, "Ana").Return(nil, profiling.ErrProfileNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrUserNotFound,
		},
		{
			name:           "Corpo inválido",
			body:           `[`,
			setupMock:      func(m *mocks.MockProfiler) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockProfiler := mocks.NewMockProfiler(ctrl)
			tt.setupMock(mockProfiler)

			rec := httptest.NewRecorder()
			UpdateProfile(mockProfiler).ServeHTTP(rec, newRequest(http.MethodPut, "/v1/me", tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
				return
			}

			var user domain.User
			decodeBody(t, rec, &user)
			assert.Equal(t, "Ana Maria", user.Name)
		})
	}
}
