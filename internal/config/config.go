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
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Meta     Meta     `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Cron     Cron     `mapstructure:",squash"`
	Sync     Sync     `mapstructure:",squash"`
	Analysis Analysis `mapstructure:",squash"`
	AI       AI       `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
	Tracing  Tracing  `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	Timezone string `mapstructure:"timezone"`
}

// Location devolve o fuso usado para calcular o dia alvo das rotinas
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido: %s, usando UTC", a.Timezone)
		return time.UTC
	}

	return loc
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
	PageLimit      int           `mapstructure:"meta_page_limit"`
}

// Auth valida os tokens de sessão emitidos pelo login externo
type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Cron protege os gatilhos de lote com um segredo compartilhado
type Cron struct {
	Secret string `mapstructure:"cron_secret"`
}

type Sync struct {
	CronSchedule      string `mapstructure:"sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"sync_enabled"`
}

type Analysis struct {
	CronSchedule string `mapstructure:"analysis_cron"`
	WindowDays   int    `mapstructure:"analysis_window_days"`
	Enabled      bool   `mapstructure:"analysis_enabled"`
}

type AI struct {
	Provider        string        `mapstructure:"ai_provider"`
	Timeout         time.Duration `mapstructure:"ai_timeout"`
	MaxTokens       int           `mapstructure:"ai_max_tokens"`
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key"`
	AnthropicModel  string        `mapstructure:"anthropic_model"`
	OpenAIAPIKey    string        `mapstructure:"openai_api_key"`
	OpenAIModel     string        `mapstructure:"openai_model"`
	OpenAIBaseURL   string        `mapstructure:"openai_base_url"`
	GeminiAPIKey    string        `mapstructure:"gemini_api_key"`
	GeminiModel     string        `mapstructure:"gemini_model"`
}

type Cache struct {
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"cache_ttl"`
}

type Tracing struct {
	Enabled     bool   `mapstructure:"tracing_enabled"`
	Endpoint    string `mapstructure:"tracing_endpoint"`
	ServiceName string `mapstructure:"tracing_service_name"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaign_health")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s") // Timeout por chamada à Graph API
	viper.SetDefault("META_PAGE_LIMIT", 500)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CRON_SECRET", "") // Vazio rejeita todos os gatilhos

	// Defaults para a sincronização diária de snapshots
	viper.SetDefault("SYNC_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("SYNC_MAX_CONCURRENT_JOBS", 3) // 3 campanhas em paralelo por conta
	viper.SetDefault("SYNC_ENABLED", false)         // Habilitar sincronização agendada

	// Defaults para a análise diária
	viper.SetDefault("ANALYSIS_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ANALYSIS_WINDOW_DAYS", 7)    // Janela de histórico, incluindo o dia alvo
	viper.SetDefault("ANALYSIS_ENABLED", false)    // Habilitar análise agendada

	viper.SetDefault("AI_PROVIDER", "none")
	viper.SetDefault("AI_TIMEOUT", "30s")
	viper.SetDefault("AI_MAX_TOKENS", 1024)
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", "10m")

	viper.SetDefault("TRACING_ENABLED", false)
	viper.SetDefault("TRACING_ENDPOINT", "http://localhost:14268/api/traces")
	viper.SetDefault("TRACING_SERVICE_NAME", "campaign-health-api")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	if config.Meta.URL == "" {
		config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	}

	if config.Sync.MaxConcurrentJobs < 1 {
		config.Sync.MaxConcurrentJobs = 1
	}

	if config.Analysis.WindowDays < 1 {
		config.Analysis.WindowDays = 7
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
