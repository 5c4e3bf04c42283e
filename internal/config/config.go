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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Gemini     Gemini     `mapstructure:",squash"`
	Extractor  Extractor  `mapstructure:",squash"`
	Campaign   Campaign   `mapstructure:",squash"`
	Monitoring Monitoring `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Kafka      Kafka      `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Path     string `mapstructure:"database_path"`
}

type Gemini struct {
	APIKey      string  `mapstructure:"gemini_api_key"`
	Model       string  `mapstructure:"gemini_model"`
	Temperature float64 `mapstructure:"gemini_temperature"`
	MaxRetries  int     `mapstructure:"gemini_max_retries"`
}

// Extractor configura o serviço de OCR/visão e o polling dos jobs assíncronos.
type Extractor struct {
	URL             string        `mapstructure:"extractor_url"`
	Token           string        `mapstructure:"extractor_token"`
	PollInterval    time.Duration `mapstructure:"extractor_poll_interval"`
	MaxPollInterval time.Duration `mapstructure:"extractor_max_poll_interval"`
	Deadline        time.Duration `mapstructure:"extractor_deadline"`
	MaxLabels       int           `mapstructure:"extractor_max_labels"`
	MinConfidence   float64       `mapstructure:"extractor_min_confidence"`
}

type Campaign struct {
	EmailRecipient    string `mapstructure:"campaign_email_recipient"`
	EmailSender       string `mapstructure:"campaign_email_sender"`
	WhatsAppRecipient string `mapstructure:"campaign_whatsapp_recipient"`
	SocialPlatform    string `mapstructure:"campaign_social_platform"`
	MaxParallel       int    `mapstructure:"campaign_max_parallel"`
}

type Monitoring struct {
	CronSchedule   string        `mapstructure:"monitoring_cron"`
	Enabled        bool          `mapstructure:"monitoring_enabled"`
	MaxRefinements int           `mapstructure:"monitoring_max_refinements"`
	Window         time.Duration `mapstructure:"monitoring_window"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Kafka struct {
	Brokers []string `mapstructure:"kafka_brokers"`
	Topic   string   `mapstructure:"kafka_topic"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/harmony?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "harmony.db")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.4)
	viper.SetDefault("GEMINI_MAX_RETRIES", 2)

	viper.SetDefault("EXTRACTOR_URL", "http://localhost:8081")
	viper.SetDefault("EXTRACTOR_TOKEN", "")
	viper.SetDefault("EXTRACTOR_POLL_INTERVAL", "1s")
	viper.SetDefault("EXTRACTOR_MAX_POLL_INTERVAL", "8s")
	viper.SetDefault("EXTRACTOR_DEADLINE", "2m")
	viper.SetDefault("EXTRACTOR_MAX_LABELS", 10)
	viper.SetDefault("EXTRACTOR_MIN_CONFIDENCE", 75)

	viper.SetDefault("CAMPAIGN_EMAIL_RECIPIENT", "customer1@example.com")
	viper.SetDefault("CAMPAIGN_EMAIL_SENDER", "marketing@example.com")
	viper.SetDefault("CAMPAIGN_WHATSAPP_RECIPIENT", "+15550000000")
	viper.SetDefault("CAMPAIGN_SOCIAL_PLATFORM", "Social Media")
	viper.SetDefault("CAMPAIGN_MAX_PARALLEL", 3)

	viper.SetDefault("MONITORING_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("MONITORING_ENABLED", false)
	viper.SetDefault("MONITORING_MAX_REFINEMENTS", 3) // Refinamentos automáticos por plano dentro da janela
	viper.SetDefault("MONITORING_WINDOW", "24h")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "harmony.plan-lifecycle")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

// finalize monta os campos derivados e valida o que não pode ficar zerado.
func (c *Config) finalize() error {
	switch c.Database.Driver {
	case "postgres":
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case "sqlite":
		c.Database.DSN = c.Database.Path
	default:
		return fmt.Errorf("config: driver de banco não suportado: %q", c.Database.Driver)
	}

	if c.Extractor.PollInterval <= 0 {
		return fmt.Errorf("config: EXTRACTOR_POLL_INTERVAL deve ser positivo")
	}
	if c.Extractor.MaxPollInterval < c.Extractor.PollInterval {
		c.Extractor.MaxPollInterval = c.Extractor.PollInterval
	}
	if c.Extractor.Deadline <= 0 {
		return fmt.Errorf("config: EXTRACTOR_DEADLINE deve ser positivo")
	}
	if c.Campaign.MaxParallel <= 0 {
		c.Campaign.MaxParallel = 1
	}

	c.Kafka.Brokers = compact(c.Kafka.Brokers)
	c.Server.AllowedOrigins = compact(c.Server.AllowedOrigins)

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
