package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Telegram   TelegramConfig
	Transcribe TranscribeConfig
	Render     RenderConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
}

type TelegramConfig struct {
	Token string
	// AdminChatID is the only chat allowed to upload catalog spreadsheets.
	// Zero disables the import flow.
	AdminChatID int64
}

type TranscribeConfig struct {
	// GeminiAPIKey may be empty; voice messages then take the fallback
	// placeholder branch instead of being transcribed.
	GeminiAPIKey string
}

type RenderConfig struct {
	// FontPath points at a TTF with Arabic glyph coverage. Empty selects
	// the built-in core font, which covers Latin text only.
	FontPath string
	TempDir  string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "quotebot")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "quotebot")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_ADMIN_CHAT_ID", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FONT_PATH", "fonts/Amiri-Regular.ttf")
	viper.SetDefault("TEMP_DIR", "temp")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:         viper.GetString("DB_HOST"),
			Port:         viper.GetInt("DB_PORT"),
			User:         viper.GetString("DB_USER"),
			Password:     viper.GetString("DB_PASSWORD"),
			Name:         viper.GetString("DB_NAME"),
			MaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Telegram: TelegramConfig{
			Token:       viper.GetString("TELEGRAM_BOT_TOKEN"),
			AdminChatID: viper.GetInt64("TELEGRAM_ADMIN_CHAT_ID"),
		},
		Transcribe: TranscribeConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		},
		Render: RenderConfig{
			FontPath: viper.GetString("FONT_PATH"),
			TempDir:  viper.GetString("TEMP_DIR"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg, nil
}
