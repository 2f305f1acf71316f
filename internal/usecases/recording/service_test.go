package recording

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testSession = &domain.Session{
	ID:        uuid.MustParse("7f1e7c4e-1d7a-4c43-9a53-2a4b0c1f0a11"),
	UserID:    42,
	ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
}

func newTestService(t *testing.T) (*Service, *mocks.MockSalesEntryRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSalesEntryRepository(ctrl)

	service := &Service{
		entryRepo: repo,
		cfg:       config.Entries{DefaultPageSize: 10, MaxPageSize: 100},
	}

	return service, repo
}

func TestService_NoSessionSkipsFetch(t *testing.T) {
	// O mock sem expectativas falha se qualquer método do repositório for chamado
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.ListForAggregation(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = service.ListPage(ctx, nil, 1, 10)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = service.ListRange(ctx, nil, time.Now(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = service.TodayTotal(ctx, nil, time.Now())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = service.Create(ctx, nil, domain.EntryForm{UpperItems: "1", LowerItems: "1", Cost: "1"})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestService_ListForAggregation(t *testing.T) {
	service, repo := newTestService(t)

	expected := []*domain.SalesEntry{{ID: uuid.New(), OwnerID: 42, Cost: decimal.NewFromInt(5)}}
	repo.EXPECT().ListByOwner(gomock.Any(), 42).Return(expected, nil)

	entries, err := service.ListForAggregation(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestService_ListForAggregation_StoreFailure(t *testing.T) {
	service, repo := newTestService(t)

	storeErr := errors.New("connection refused")
	repo.EXPECT().ListByOwner(gomock.Any(), 42).Return(nil, storeErr).Times(1)

	entries, err := service.ListForAggregation(context.Background(), testSession)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, storeErr)
}

func TestService_ListPage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		perPage        int
		total          int
		expectedOffset int
		expectedLimit  int
		expectedPages  int
	}{
		{
			name:           "Primeira página com tamanho padrão",
			page:           0,
			perPage:        0,
			total:          25,
			expectedOffset: 0,
			expectedLimit:  10,
			expectedPages:  3,
		},
		{
			name:           "Terceira página",
			page:           3,
			perPage:        10,
			total:          25,
			expectedOffset: 20,
			expectedLimit:  10,
			expectedPages:  3,
		},
		{
			name:           "Tamanho acima do máximo é limitado",
			page:           1,
			perPage:        1000,
			total:          150,
			expectedOffset: 0,
			expectedLimit:  100,
			expectedPages:  2,
		},
		{
			name:           "Sem lançamentos ainda retorna uma página",
			page:           1,
			perPage:        10,
			total:          0,
			expectedOffset: 0,
			expectedLimit:  10,
			expectedPages:  1,
		},
		{
			name:           "Total múltiplo do tamanho da página",
			page:           2,
			perPage:        10,
			total:          20,
			expectedOffset: 10,
			expectedLimit:  10,
			expectedPages:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)

			repo.EXPECT().
				ListPage(gomock.Any(), 42, tt.expectedOffset, tt.expectedLimit).
				Return([]*domain.SalesEntry{}, tt.total, nil)

			page, err := service.ListPage(context.Background(), testSession, tt.page, tt.perPage)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedLimit, page.PerPage)
			assert.Equal(t, tt.total, page.TotalCount)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.GreaterOrEqual(t, page.Page, 1)
		})
	}
}

func TestService_ListRange(t *testing.T) {
	service, repo := newTestService(t)

	from := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListRange(gomock.Any(), 42,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.SalesEntry{}, nil)

	entries, err := service.ListRange(context.Background(), testSession, from, to)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_ListRange_Inverted(t *testing.T) {
	service, _ := newTestService(t)

	from := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.ListRange(context.Background(), testSession, from, to)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, entryErr.Code)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_TodayTotal(t *testing.T) {
	service, repo := newTestService(t)

	now := time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListSince(gomock.Any(), 42, midnight).Return([]*domain.SalesEntry{
		{CreatedAt: midnight, Cost: decimal.RequireFromString("10.50")},
		{CreatedAt: now, Cost: decimal.RequireFromString("4.25")},
	}, nil)

	total, err := service.TodayTotal(context.Background(), testSession, now)
	require.NoError(t, err)
	assert.Equal(t, "14.75", total.String())
}

func TestService_Create(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.SalesEntry) (*domain.SalesEntry, error) {
			assert.Equal(t, 42, entry.OwnerID)
			assert.Equal(t, 3, entry.UpperItems)
			assert.Equal(t, 2, entry.LowerItems)
			assert.Equal(t, 5, entry.TotalItems)
			assert.Equal(t, "19.9", entry.Cost.String())

			entry.ID = uuid.New()
			entry.CreatedAt = time.Now()
			return entry, nil
		})

	entry, err := service.Create(context.Background(), testSession, domain.EntryForm{
		UpperItems: "3",
		LowerItems: "2",
		TotalItems: "",
		Cost:       "19.90",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestService_Create_InvalidFormNeverReachesStore(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(context.Background(), testSession, domain.EntryForm{
		UpperItems: "abc",
		LowerItems: "2",
		TotalItems: "2",
		Cost:       "10",
	})

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, "upper_items", entryErr.Field)
}
