package recording

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

const defaultPageSize = 10

type Recorder interface {
	ListForAggregation(ctx context.Context, session *domain.Session) ([]*domain.SalesEntry, error)
	ListPage(ctx context.Context, session *domain.Session, page, perPage int) (*domain.EntryPage, error)
	ListRange(ctx context.Context, session *domain.Session, from, to time.Time) ([]*domain.SalesEntry, error)
	TodayTotal(ctx context.Context, session *domain.Session, now time.Time) (decimal.Decimal, error)
	Create(ctx context.Context, session *domain.Session, form domain.EntryForm) (*domain.SalesEntry, error)
}

type Service struct {
	entryRepo repository.SalesEntryRepository
	cfg       config.Entries
}

func NewService(entryRepo repository.SalesEntryRepository, cfg config.Entries) Recorder {
	return &Service{
		entryRepo: entryRepo,
		cfg:       cfg,
	}
}

// ListForAggregation busca todos os lançamentos do usuário em ordem cronológica
func (s *Service) ListForAggregation(ctx context.Context, session *domain.Session) ([]*domain.SalesEntry, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	entries, err := s.entryRepo.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "recording: listar lançamentos")
	}

	return entries, nil
}

// ListPage busca uma página de lançamentos, do mais recente para o mais antigo
func (s *Service) ListPage(ctx context.Context, session *domain.Session, page, perPage int) (*domain.EntryPage, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	page, perPage = s.normalizePage(page, perPage)
	offset := (page - 1) * perPage

	entries, total, err := s.entryRepo.ListPage(ctx, session.UserID, offset, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "recording: listar página de lançamentos")
	}

	return &domain.EntryPage{
		Entries:    entries,
		Page:       page,
		PerPage:    perPage,
		TotalCount: total,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// ListRange busca os lançamentos entre as datas from e to, ambas inclusivas
func (s *Service) ListRange(ctx context.Context, session *domain.Session, from, to time.Time) ([]*domain.SalesEntry, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	start := aggregating.StartOfDay(from)
	end := aggregating.StartOfDay(to).AddDate(0, 0, 1)
	if !start.Before(end) {
		return nil, NewEntryError(ErrInvalidRange, apiErrors.ErrInvalidRequest, "end_date")
	}

	entries, err := s.entryRepo.ListRange(ctx, session.UserID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "recording: listar lançamentos por período")
	}

	return entries, nil
}

// TodayTotal soma o custo dos lançamentos criados desde a meia-noite de now
func (s *Service) TodayTotal(ctx context.Context, session *domain.Session, now time.Time) (decimal.Decimal, error) {
	if session == nil {
		return decimal.Zero, domain.ErrNoSession
	}

	since := aggregating.StartOfDay(now)
	entries, err := s.entryRepo.ListSince(ctx, session.UserID, since)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "recording: total do dia")
	}

	return aggregating.TotalSince(entries, since), nil
}

// Create valida o formulário e grava um novo lançamento. Formulários inválidos não chegam ao banco.
func (s *Service) Create(ctx context.Context, session *domain.Session, form domain.EntryForm) (*domain.SalesEntry, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	input, err := ValidateForm(form)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.Create(ctx, &domain.SalesEntry{
		OwnerID:    session.UserID,
		UpperItems: input.UpperItems,
		LowerItems: input.LowerItems,
		TotalItems: input.TotalItems,
		Cost:       input.Cost,
	})
	if err != nil {
		return nil, errors.Wrap(err, "recording: criar lançamento")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  session.UserID,
		"entry_id": entry.ID,
	}).Info("Lançamento criado")

	return entry, nil
}

func (s *Service) normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}

	if perPage <= 0 {
		perPage = s.cfg.DefaultPageSize
	}

	if perPage <= 0 {
		perPage = defaultPageSize
	}

	if s.cfg.MaxPageSize > 0 && perPage > s.cfg.MaxPageSize {
		perPage = s.cfg.MaxPageSize
	}

	return page, perPage
}

func totalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
