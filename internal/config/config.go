// Package config
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

/*
YAML config example:
api_key: "..."
api_secret: "..."
log_file: "bot.log"
telegram_token: "..."
telegram_chat_id: "..."
notification_retries: 3
notification_delay: 5s
*/

type Config struct {
	APIKey              string        `yaml:"api_key"`
	APISecret           string        `yaml:"api_secret"`
	LogFile             string        `yaml:"log_file"`
	TelegramToken       string        `yaml:"telegram_token"`
	TelegramChatID      string        `yaml:"telegram_chat_id"`
	NotificationRetries int           `yaml:"notification_retries"`
	NotificationDelay   time.Duration `yaml:"notification_delay"`
}

// Load reads the optional YAML config file and overlays environment
// variables on top. Credentials come from BINANCE_API_KEY and
// BINANCE_API_SECRET; the .env file (if any) has been loaded into the
// environment before this runs.
func Load(file string) (Config, error) {
	cfg := Config{
		LogFile:             "bot.log",
		NotificationRetries: 3,
		NotificationDelay:   5 * time.Second,
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parsing config file")
		}
	}

	if v := os.Getenv("BINANCE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BINANCE_API_SECRET"); v != "" {
		cfg.APISecret = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.TelegramChatID = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}

// Validate fails fast when credentials are missing so no request is ever
// sent unsigned.
func (c Config) Validate() error {
	if c.APIKey == "" || c.APISecret == "" {
		return errors.New("BINANCE_API_KEY and BINANCE_API_SECRET must be set")
	}
	return nil
}
