package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Webhook struct {
		VerifyToken string `yaml:"verify_token"`
		AppSecret   string `yaml:"app_secret"`
	} `yaml:"webhook"`
	Gemini struct {
		APIKey         string `yaml:"api_key"`
		ModelName      string `yaml:"model_name"`
		MaxRetries     int    `yaml:"max_retries"`
		TimeoutSeconds int64  `yaml:"timeout_seconds"`
	} `yaml:"gemini"`
	OpsAPI struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"ops_api"`
	Notifier struct {
		Enabled          bool   `yaml:"enabled"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		ChatID           int64  `yaml:"chat_id"`
	} `yaml:"notifier"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}
