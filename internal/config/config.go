package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	LoginLimiter LoginLimiter `mapstructure:",squash"`
	SessionSweep SessionSweep `mapstructure:",squash"`
	Entries      Entries      `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel     string         `mapstructure:"log_level"`
	Timezone     string         `mapstructure:"app_timezone"`
	WeekStartDay string         `mapstructure:"week_start_day"`
	Location     *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Auth struct {
	SessionTTL time.Duration `mapstructure:"auth_session_ttl"`
	BcryptCost int           `mapstructure:"auth_bcrypt_cost"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

type LoginLimiter struct {
	MaxAttempts  int           `mapstructure:"login_max_attempts"`
	LockDuration time.Duration `mapstructure:"login_lock_duration"`
}

type SessionSweep struct {
	CronSchedule     string `mapstructure:"session_sweep_cron"`
	Enabled          bool   `mapstructure:"session_sweep_enabled"`
	// Libera POST /v1/cron/run/:type. Qualquer usuário autenticado pode disparar a execução
	ManualRunEnabled bool   `mapstructure:"session_sweep_manual_run_enabled"`
}

type Entries struct {
	DefaultPageSize int `mapstructure:"entries_default_page_size"`
	MaxPageSize     int `mapstructure:"entries_max_page_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_BCRYPT_COST", 10)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	viper.SetDefault("LOGIN_LOCK_DURATION", "15m")

	viper.SetDefault("SESSION_SWEEP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)
	viper.SetDefault("SESSION_SWEEP_MANUAL_RUN_ENABLED", false)

	viper.SetDefault("ENTRIES_DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("ENTRIES_MAX_PAGE_SIZE", 100)

	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("WEEK_START_DAY", "sunday")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize preenche os campos derivados e valida os valores carregados
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = 24 * time.Hour
	}

	if c.Entries.DefaultPageSize <= 0 {
		c.Entries.DefaultPageSize = 10
	}

	if c.Entries.MaxPageSize < c.Entries.DefaultPageSize {
		c.Entries.MaxPageSize = c.Entries.DefaultPageSize
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
