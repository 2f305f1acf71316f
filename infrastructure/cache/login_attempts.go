package cache

//go:generate mockgen -source=login_attempts.go -destination=mocks/login_attempts.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const loginAttemptsPrefix = "login_attempts:"

// LoginAttemptStore conta tentativas de login com falha por email dentro de uma janela
type LoginAttemptStore interface {
	Count(ctx context.Context, email string) (int64, error)
	Increment(ctx context.Context, email string, window time.Duration) (int64, error)
	Reset(ctx context.Context, email string) error
}

type redisLoginAttemptStore struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewLoginAttemptStore(client *redis.Client) LoginAttemptStore {
	return &redisLoginAttemptStore{client: client}
}

var _ LoginAttemptStore = (*redisLoginAttemptStore)(nil)

func attemptsKey(email string) string {
	return fmt.Sprintf("%s%s", loginAttemptsPrefix, email)
}

func (s *redisLoginAttemptStore) Count(ctx context.Context, email string) (int64, error) {
	n, err := s.client.Get(ctx, attemptsKey(email)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler tentativas de login")
	}
	return n, nil
}

// Increment soma uma falha. A janela começa na primeira falha e não é renovada pelas seguintes.
func (s *redisLoginAttemptStore) Increment(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := attemptsKey(email)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrap(err, "erro ao registrar tentativa de login")
	}

	return incr.Val(), nil
}

func (s *redisLoginAttemptStore) Reset(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, attemptsKey(email)).Err(); err != nil {
		return errors.Wrap(err, "erro ao limpar tentativas de login")
	}
	return nil
}

// noopLoginAttemptStore é usado quando o Redis está desabilitado: nunca bloqueia
type noopLoginAttemptStore struct{}

func NewNoopLoginAttemptStore() LoginAttemptStore {
	return noopLoginAttemptStore{}
}

func (noopLoginAttemptStore) Count(context.Context, string) (int64, error) { return 0, nil }

func (noopLoginAttemptStore) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, nil
}

func (noopLoginAttemptStore) Reset(context.Context, string) error { return nil }
