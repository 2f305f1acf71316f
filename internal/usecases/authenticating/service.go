package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/infrastructure/cache"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type Authenticator interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.SignInResponse, error)
	SignOut(ctx context.Context, session *domain.Session) error
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, *domain.Session, error)
	CurrentUser(ctx context.Context, session *domain.Session) (*domain.User, error)
}

type Service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	attempts    cache.LoginAttemptStore
	cfg         *config.Config
	now         func() time.Time
}

func NewService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	attempts cache.LoginAttemptStore,
	cfg *config.Config,
) Authenticator {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		attempts:    attempts,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *Service) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := handleEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	if !strings.Contains(email, "@") {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	if err := ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost())
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	username, err := utils.GenerateUsername(email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar nome de usuário")
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.SignInResponse, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)
	logger := log.ForContext(ctx).WithField("user_email", email)

	if s.isLocked(ctx, email) {
		return nil, NewAuthError(ErrUserLocked, apiErrors.ErrUserLocked, "Muitas tentativas de login, tente novamente mais tarde")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Email desconhecido e senha errada respondem da mesma forma
	if user == nil {
		s.registerFailure(ctx, email)
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.registerFailure(ctx, email)
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	if err := s.attempts.Reset(ctx, email); err != nil {
		logger.WithError(err).Warn("Não foi possível limpar as tentativas de login")
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Auth.SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, user.ID, "Erro ao criar sessão")
	}

	// Gerar token JWT
	token, err := generateJWT(user, session, s.cfg.SecretKey)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrInternalServer, user.ID, "Erro ao gerar token de autenticação")
	}

	logger.WithField("user_id", user.ID).Info("Sessão iniciada")

	return &domain.SignInResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// SignOut encerra a sessão. O token emitido para ela deixa de ser aceito.
func (s *Service) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.ErrNoSession
	}

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return NewUserAuthError(err, apiErrors.ErrDatabaseOperation, session.UserID, "Erro ao encerrar sessão")
	}

	log.ForContext(ctx).WithField("user_id", session.UserID).Info("Sessão encerrada")
	return nil
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, *domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem sessão")
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, NewUserAuthError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, claims.UserID, "Sessão encerrada")
		}
		return nil, nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, claims.UserID, "Erro ao consultar sessão")
	}

	if session.UserID != claims.UserID {
		return nil, nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Sessão não pertence ao usuário")
	}

	if session.Expired(s.now()) {
		return nil, nil, NewUserAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, claims.UserID, "Sessão expirada")
	}

	return claims, session, nil
}

func (s *Service) CurrentUser(ctx context.Context, session *domain.Session) (*domain.User, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}

	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, session.UserID, "Usuário não encontrado")
		}
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, session.UserID, "Erro ao obter dados do usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

// ValidatePasswordStrength exige ao menos 6 caracteres
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, fmt.Sprintf("a senha deve conter pelo menos %d caracteres", minPasswordLength))
	}
	return nil
}

// isLocked falha aberto: se o contador estiver indisponível o login segue normalmente
func (s *Service) isLocked(ctx context.Context, email string) bool {
	maxAttempts := s.cfg.LoginLimiter.MaxAttempts
	if maxAttempts <= 0 {
		return false
	}

	count, err := s.attempts.Count(ctx, email)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Contador de tentativas de login indisponível")
		return false
	}

	return count >= int64(maxAttempts)
}

func (s *Service) registerFailure(ctx context.Context, email string) {
	if s.cfg.LoginLimiter.MaxAttempts <= 0 {
		return
	}

	if _, err := s.attempts.Increment(ctx, email, s.cfg.LoginLimiter.LockDuration); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível registrar tentativa de login")
	}
}

func (s *Service) bcryptCost() int {
	cost := s.cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func generateJWT(user *domain.User, session *domain.Session, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
