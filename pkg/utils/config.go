package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AdminConfig struct {
	// Password gates the dashboard. When PasswordHash is set it takes
	// precedence and Password is ignored.
	Password     string
	PasswordHash string
}

type EmailConfig struct {
	// EmailJS-style transactional provider. The defaults are placeholders:
	// sends against them fail, which keeps local development quiet without
	// extra setup. Submission success never depends on the send.
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("EMAILJS_BASE_URL", "https://api.emailjs.com")
	viper.SetDefault("EMAILJS_SERVICE_ID", "default_service")
	viper.SetDefault("EMAILJS_TEMPLATE_ID", "default_template")
	viper.SetDefault("EMAILJS_PUBLIC_KEY", "default_key")
	viper.SetDefault("EMAIL_TO", "default@example.com")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine as long as the environment carries the values
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			Password:     viper.GetString("ADMIN_PASSWORD"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		Email: EmailConfig{
			BaseURL:    viper.GetString("EMAILJS_BASE_URL"),
			ServiceID:  viper.GetString("EMAILJS_SERVICE_ID"),
			TemplateID: viper.GetString("EMAILJS_TEMPLATE_ID"),
			PublicKey:  viper.GetString("EMAILJS_PUBLIC_KEY"),
			ToEmail:    viper.GetString("EMAIL_TO"),
		},
	}

	return config, nil
}
