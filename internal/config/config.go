package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN               string `mapstructure:"-"`
	Driver            string `mapstructure:"database_driver"`
	Host              string `mapstructure:"postgres_host"`
	Name              string `mapstructure:"postgres_db"`
	User              string `mapstructure:"postgres_user"`
	Password          string `mapstructure:"postgres_password"`
	SSLMode           string `mapstructure:"database_sslmode"`
	RetryAttempts     int    `mapstructure:"db_retry_attempts"`
	RetryDelaySeconds int    `mapstructure:"db_retry_delay_seconds"`
}

type Cache struct {
	TTLSeconds     int    `mapstructure:"cache_ttl_seconds"`
	RefreshCron    string `mapstructure:"cache_refresh_cron"`
	RefreshEnabled bool   `mapstructure:"cache_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	// Identificador fixo do host do banco no ambiente de composição
	viper.SetDefault("POSTGRES_HOST", "postgres_db")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	// Política de cache e retry do loader (espelha os valores observados na
	// configuração original: TTL de 60s, 5 tentativas, 10s entre tentativas)
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("DB_RETRY_ATTEMPTS", 5)
	viper.SetDefault("DB_RETRY_DELAY_SECONDS", 10)

	// Atualização periódica do cache em segundo plano
	viper.SetDefault("CACHE_REFRESH_CRON", "*/1 * * * *") // A cada minuto
	viper.SetDefault("CACHE_REFRESH_ENABLED", false)

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

	// As credenciais obrigatórias não têm valor padrão e em produção chegam
	// apenas como variáveis de ambiente; o Unmarshal do viper só enxerga chaves
	// registradas, então elas precisam de bind explícito
	for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

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

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s/%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.Host,
		config.Database.Name,
		config.Database.SSLMode,
	)

	return config, nil
}

// Validate garante na inicialização que todas as credenciais obrigatórias do
// banco foram informadas, enumerando os campos ausentes.
func (d Database) Validate() error {
	missing := make([]string, 0)

	if d.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if d.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if d.Name == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if d.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuração do banco incompleta, variáveis obrigatórias ausentes: %s", strings.Join(missing, ", "))
	}

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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
