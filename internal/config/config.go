package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	BigQuery    BigQuery    `mapstructure:",squash"`
	OpenAI      OpenAI      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// BigQuery guarda as credenciais da service account do warehouse. PrivateKey
// pode chegar com "\n" literal (variável de ambiente de painel de deploy) e é
// normalizada em NewConfig.
type BigQuery struct {
	ProjectID   string `mapstructure:"bq_project_id"`
	ClientEmail string `mapstructure:"bq_client_email"`
	PrivateKey  string `mapstructure:"bq_private_key"`
	Location    string `mapstructure:"bq_location"`
}

type OpenAI struct {
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	Temperature float64 `mapstructure:"openai_temperature"`
}

// Auth configura a fronteira de autenticação: o segredo de verificação dos
// tokens e o domínio de e-mail organizacional autorizado.
type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	AllowedDomain string `mapstructure:"auth_allowed_domain"`
}

type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("BQ_PROJECT_ID", "worlddata-439415")
	viper.SetDefault("BQ_CLIENT_EMAIL", "")
	viper.SetDefault("BQ_PRIVATE_KEY", "")
	viper.SetDefault("BQ_LOCATION", "US")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.3)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ALLOWED_DOMAIN", "worlddata.com.br")

	viper.SetDefault("CATALOG_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("CATALOG_SYNC_ENABLED", false)

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

	// Painéis de deploy entregam a chave PEM com "\n" literal
	config.BigQuery.PrivateKey = strings.ReplaceAll(config.BigQuery.PrivateKey, `\n`, "\n")

	return config, nil
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
