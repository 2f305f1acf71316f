package profiling

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

const maxNameLength = 255

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrNameTooLong     = errors.New("nome muito longo")
	ErrProfileNotFound = errors.New("perfil não encontrado")
)

type Profiler interface {
	Get(ctx context.Context, session *domain.Session) (*domain.User, error)
	UpdateName(ctx context.Context, session *domain.Session, name string) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Profiler {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Get(ctx context.Context, session *domain.Session) (*domain.User, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profiling: buscar perfil")
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateName altera apenas o nome. Email e username não são editáveis.
func (s *Service) UpdateName(ctx context.Context, session *domain.Session, name string) (*domain.User, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len([]rune(name)) > maxNameLength {
		return nil, ErrNameTooLong
	}

	if err := s.userRepo.UpdateName(ctx, session.UserID, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profiling: atualizar nome")
	}

	log.ForContext(ctx).WithField("user_id", session.UserID).Info("Perfil atualizado")

	return s.Get(ctx, session)
}
