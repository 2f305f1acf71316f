package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const salesEntriesTable = "sales_entries"

// Os valores numéricos são lidos como texto e convertidos no Go por coerceEntry.
// Linhas gravadas por outras ferramentas podem trazer valores fora do formato. Nesse caso o
// campo vira zero com aviso no log e a linha continua na agregação, em vez de o Scan falhar
// e derrubar a leitura inteira.
var salesEntryColumns = []string{
	"id",
	"user_id",
	"created_at",
	"upper_items::text",
	"lower_items::text",
	"total_items::text",
	"cost::text",
}

type SalesEntryRepository interface {
	Create(ctx context.Context, entry *domain.SalesEntry) (*domain.SalesEntry, error)
	ListByOwner(ctx context.Context, ownerID int) ([]*domain.SalesEntry, error)
	ListRange(ctx context.Context, ownerID int, from, to time.Time) ([]*domain.SalesEntry, error)
	ListPage(ctx context.Context, ownerID int, offset, limit int) ([]*domain.SalesEntry, int, error)
	ListSince(ctx context.Context, ownerID int, since time.Time) ([]*domain.SalesEntry, error)
}

type salesEntryRepository struct {
	conn postgres.Queryer
}

func NewSalesEntryRepository(conn postgres.Queryer) SalesEntryRepository {
	return &salesEntryRepository{
		conn: conn,
	}
}

func (r *salesEntryRepository) Create(ctx context.Context, entry *domain.SalesEntry) (*domain.SalesEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query, args, err := psql.
		Insert(salesEntriesTable).
		Columns("id", "user_id", "upper_items", "lower_items", "total_items", "cost").
		Values(entry.ID, entry.OwnerID, entry.UpperItems, entry.LowerItems, entry.TotalItems, entry.Cost.String()).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir insert de lançamento")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir lançamento")
	}

	return entry, nil
}

// ListByOwner retorna todos os lançamentos do dono, do mais antigo para o mais recente
func (r *salesEntryRepository) ListByOwner(ctx context.Context, ownerID int) ([]*domain.SalesEntry, error) {
	builder := psql.
		Select(salesEntryColumns...).
		From(salesEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at ASC")

	return r.list(ctx, builder)
}

// ListRange retorna os lançamentos com created_at em [from, to), em ordem cronológica
func (r *salesEntryRepository) ListRange(ctx context.Context, ownerID int, from, to time.Time) ([]*domain.SalesEntry, error) {
	builder := psql.
		Select(salesEntryColumns...).
		From(salesEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		OrderBy("created_at ASC")

	return r.list(ctx, builder)
}

// ListPage retorna uma página do mais recente para o mais antigo e o total de lançamentos do dono
func (r *salesEntryRepository) ListPage(ctx context.Context, ownerID int, offset, limit int) ([]*domain.SalesEntry, int, error) {
	countSQL, countArgs, err := psql.
		Select("COUNT(*)").
		From(salesEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir contagem de lançamentos")
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "erro ao contar lançamentos")
	}

	builder := psql.
		Select(salesEntryColumns...).
		From(salesEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	entries, err := r.list(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListSince retorna os lançamentos criados a partir de since
func (r *salesEntryRepository) ListSince(ctx context.Context, ownerID int, since time.Time) ([]*domain.SalesEntry, error) {
	builder := psql.
		Select(salesEntryColumns...).
		From(salesEntriesTable).
		Where(squirrel.Eq{"user_id": ownerID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC")

	return r.list(ctx, builder)
}

func (r *salesEntryRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.SalesEntry, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de lançamentos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar lançamentos")
	}
	defer rows.Close()

	entries := make([]*domain.SalesEntry, 0)
	for rows.Next() {
		var entry domain.SalesEntry
		var upper, lower, total, cost string

		if err := rows.Scan(&entry.ID, &entry.OwnerID, &entry.CreatedAt, &upper, &lower, &total, &cost); err != nil {
			return nil, errors.Wrap(err, "erro ao processar lançamento")
		}

		coerceEntry(&entry, upper, lower, total, cost)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração dos lançamentos")
	}

	return entries, nil
}

func coerceEntry(entry *domain.SalesEntry, upper, lower, total, cost string) {
	var ok bool
	invalid := make([]string, 0)

	if entry.UpperItems, ok = domain.CoerceInt(upper); !ok {
		invalid = append(invalid, "upper_items")
	}
	if entry.LowerItems, ok = domain.CoerceInt(lower); !ok {
		invalid = append(invalid, "lower_items")
	}
	if entry.TotalItems, ok = domain.CoerceInt(total); !ok {
		invalid = append(invalid, "total_items")
	}
	if entry.Cost, ok = domain.CoerceDecimal(cost); !ok {
		invalid = append(invalid, "cost")
	}

	if len(invalid) > 0 {
		logrus.WithFields(logrus.Fields{
			"entry_id": entry.ID,
			"fields":   invalid,
		}).Warn("Valores inválidos no lançamento, considerados como zero")
	}
}
