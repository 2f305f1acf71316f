package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const sessionsTable = "sessions"

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	conn postgres.Queryer
}

func NewSessionRepository(conn postgres.Queryer) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query, args, err := psql.
		Insert(sessionsTable).
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao criar sessão")
	}

	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query, args, err := psql.
		Select("id", "user_id", "created_at", "expires_at").
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var session domain.Session
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar sessão")
	}

	return &session, nil
}

// Delete é idempotente: remover uma sessão inexistente não é erro
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover sessão")
	}

	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.
		Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover sessões expiradas")
	}

	return result.RowsAffected()
}
