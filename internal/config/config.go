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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	AdManager AdManager `mapstructure:",squash"`
	Report    Report    `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type AdManager struct {
	BaseURL             string `mapstructure:"admanager_base_url"`
	Version             string `mapstructure:"admanager_api_version"`
	URL                 string `mapstructure:"-"`
	ServiceAccountEmail string `mapstructure:"admanager_service_account_email"`
	PrivateKey          string `mapstructure:"admanager_private_key"`
	NetworkCode         string `mapstructure:"admanager_network_code"`
	ApplicationName     string `mapstructure:"admanager_application_name"`
}

type Report struct {
	PollIntervalSeconds    int `mapstructure:"report_poll_interval_seconds"`
	PollMaxAttempts        int `mapstructure:"report_poll_max_attempts"`
	DownloadTimeoutSeconds int `mapstructure:"report_download_timeout_seconds"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8080")

	viper.SetDefault("ADMANAGER_BASE_URL", "https://admanager.googleapis.com")
	viper.SetDefault("ADMANAGER_API_VERSION", "v202405")
	viper.SetDefault("ADMANAGER_SERVICE_ACCOUNT_EMAIL", "")
	viper.SetDefault("ADMANAGER_PRIVATE_KEY", "")
	viper.SetDefault("ADMANAGER_NETWORK_CODE", "")
	viper.SetDefault("ADMANAGER_APPLICATION_NAME", "admanager-revenue-api")

	// Defaults do ciclo de polling do relatório (30 tentativas x 2s = 60s)
	viper.SetDefault("REPORT_POLL_INTERVAL_SECONDS", 2)
	viper.SetDefault("REPORT_POLL_MAX_ATTEMPTS", 30)
	viper.SetDefault("REPORT_DOWNLOAD_TIMEOUT_SECONDS", 30)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

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
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	config.AdManager.URL = fmt.Sprintf("%s/%s", config.AdManager.BaseURL, config.AdManager.Version)

	// A chave privada chega como valor de linha única com "\n" escapado;
	// normalizamos para quebras de linha literais antes de montar o JWT.
	config.AdManager.PrivateKey = NormalizePrivateKey(config.AdManager.PrivateKey)

	return config, nil
}

// NormalizePrivateKey converte sequências "\n" escapadas em quebras de linha reais.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
