package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/cache"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/infrastructure/migration"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/api"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/recording"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Formato e nível de log a partir da configuração
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migration.Run(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	sessionRepo := repository.NewSessionRepository(pgConn)
	entryRepo := repository.NewSalesEntryRepository(pgConn)

	attempts := loginAttemptStore(ctx, cfg.Redis)

	authenticator := authenticating.NewService(userRepo, sessionRepo, attempts, cfg)
	profiler := profiling.NewService(userRepo)
	recorder := recording.NewService(entryRepo, cfg.Entries)

	sessionSweepService := scheduler.NewSessionSweepService(sessionRepo, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Pinger:              pgConn,
		Authenticator:       authenticator,
		Profiler:            profiler,
		Recorder:            recorder,
		SessionSweepService: sessionSweepService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do main para achar o .env local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// loginAttemptStore usa o Redis quando habilitado. Sem Redis o bloqueio por tentativas fica desligado.
func loginAttemptStore(ctx context.Context, cfg config.Redis) cache.LoginAttemptStore {
	if !cfg.Enabled {
		logrus.Warn("Redis desabilitado, bloqueio por tentativas de login inativo")
		return cache.NewNoopLoginAttemptStore()
	}

	client := cache.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB)
	if err := client.Ping(ctx).Err(); err != nil {
		// O contador falha aberto, então o servidor sobe mesmo assim
		logrus.WithError(err).Warn("Redis indisponível na inicialização")
	} else {
		logrus.WithField("addr", cfg.Addr).Info("Conexão com Redis estabelecida com sucesso")
	}

	return cache.NewLoginAttemptStore(client)
}
