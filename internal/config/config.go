package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	RecordSourcePostgres = "postgres"
	RecordSourceXLSX     = "xlsx"

	PlanSourceReference = "reference"
	PlanSourcePostgres  = "postgres"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Reference   Reference   `mapstructure:",squash"`
	Records     Records     `mapstructure:",squash"`
	Plans       Plans       `mapstructure:",squash"`
	Tempo       Tempo       `mapstructure:",squash"`
	TempoAlerts TempoAlerts `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port" validate:"required"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel         string         `mapstructure:"log_level"`
	Timezone         string         `mapstructure:"app_timezone" validate:"required"`
	MetricsNamespace string         `mapstructure:"metrics_namespace"`
	Location         *time.Location `mapstructure:"-"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret" validate:"required"`
}

// Reference aponta para o arquivo com escritórios, feriados e planos
type Reference struct {
	Path  string `mapstructure:"reference_path" validate:"required"`
	Watch bool   `mapstructure:"reference_watch"`
}

type Records struct {
	Source    string        `mapstructure:"record_source" validate:"oneof=postgres xlsx"`
	XLSXPath  string        `mapstructure:"record_xlsx_path" validate:"required_if=Source xlsx"`
	XLSXSheet string        `mapstructure:"record_xlsx_sheet"`
	Timeout   time.Duration `mapstructure:"record_source_timeout"`
}

type Plans struct {
	Source string `mapstructure:"plan_source" validate:"oneof=reference postgres"`
}

type Tempo struct {
	WarningThreshold  float64 `mapstructure:"tempo_warning_threshold" validate:"lt=0"`
	CriticalThreshold float64 `mapstructure:"tempo_critical_threshold" validate:"ltfield=WarningThreshold"`
}

type TempoAlerts struct {
	CronSchedule string `mapstructure:"tempo_alerts_cron"`
	Enabled      bool   `mapstructure:"tempo_alerts_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("APP_TIMEZONE", "Europe/Moscow")
	viper.SetDefault("METRICS_NAMESPACE", "sales_tempo")

	viper.SetDefault("REFERENCE_PATH", "reference.yaml")
	viper.SetDefault("REFERENCE_WATCH", true) // Recarrega feriados e planos quando o arquivo muda

	viper.SetDefault("RECORD_SOURCE", RecordSourcePostgres)
	viper.SetDefault("RECORD_XLSX_PATH", "")
	viper.SetDefault("RECORD_XLSX_SHEET", "Reports")
	viper.SetDefault("RECORD_SOURCE_TIMEOUT", "30s")

	viper.SetDefault("PLAN_SOURCE", PlanSourceReference)

	viper.SetDefault("TEMPO_WARNING_THRESHOLD", -20.0)
	viper.SetDefault("TEMPO_CRITICAL_THRESHOLD", -40.0)

	viper.SetDefault("TEMPO_ALERTS_CRON", "0 18 * * 1-5") // Dias úteis às 18h, depois do relatório da noite
	viper.SetDefault("TEMPO_ALERTS_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if err := config.finish(); err != nil {
		return nil, err
	}

	return config, nil
}

// finish valida a configuração e preenche os campos derivados
func (c *Config) finish() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

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
	// Obter diretório atual
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
