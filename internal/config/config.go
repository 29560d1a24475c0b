package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Sheets    Sheets    `mapstructure:",squash"`
	Gateway   Gateway   `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
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
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dashboard controla o ciclo de atualização do telão: intervalo do timer,
// tempo de exibição do overlay de comemoração e a escuta de notificações
// do banco que dispara atualização imediata
type Dashboard struct {
	RefreshIntervalSeconds     int  `mapstructure:"dashboard_refresh_interval_seconds"`
	CelebrationDisplaySeconds  int  `mapstructure:"dashboard_celebration_display_seconds"`
	RefreshEnabled             bool `mapstructure:"dashboard_refresh_enabled"`
	ListenNotificationsEnabled bool `mapstructure:"dashboard_listen_notifications_enabled"`
}

// Sheets aponta para as planilhas publicadas em CSV usadas como fonte de
// importação quando o banco ainda não tem os dados do mês
type Sheets struct {
	VendedoresCSVURL   string `mapstructure:"sheets_vendedores_csv_url"`
	DadosDiariosCSVURL string `mapstructure:"sheets_dados_diarios_csv_url"`
}

type Gateway struct {
	URL        string `mapstructure:"gateway_url"`
	ServiceKey string `mapstructure:"gateway_service_key"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do ciclo de atualização do telão
	viper.SetDefault("DASHBOARD_REFRESH_INTERVAL_SECONDS", 30)
	viper.SetDefault("DASHBOARD_CELEBRATION_DISPLAY_SECONDS", 10)
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", true)
	viper.SetDefault("DASHBOARD_LISTEN_NOTIFICATIONS_ENABLED", true)

	viper.SetDefault("SHEETS_VENDEDORES_CSV_URL", "")
	viper.SetDefault("SHEETS_DADOS_DIARIOS_CSV_URL", "")

	viper.SetDefault("GATEWAY_URL", "")
	viper.SetDefault("GATEWAY_SERVICE_KEY", "")

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
