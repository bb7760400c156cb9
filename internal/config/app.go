package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type RatesAPI struct {
	BaseURL      string `mapstructure:"base_url"`
	BaseCurrency string `mapstructure:"base_currency"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine, an unreadable one is not
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("rates_api.base_url", "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies")
	viper.SetDefault("rates_api.base_currency", "usd")
	// 0 means no timeout: a hung fetch keeps the widget loading indefinitely
	viper.SetDefault("http_client.timeout_seconds", 0)
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_SERVER_PORT")

	// rates api env vars
	_ = viper.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = viper.BindEnv("rates_api.base_currency", "RATES_API_BASE_CURRENCY")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
