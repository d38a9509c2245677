package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret   string        `yaml:"jwt_secret"`
		TokenTTLRaw string        `yaml:"token_ttl"` // e.g. "15m"
		TokenTTL    time.Duration `yaml:"-"`
	} `yaml:"auth"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	SMS struct {
		APIKey   string `yaml:"api_key"`
		SenderID string `yaml:"sender_id"`
		GateURL  string `yaml:"gate_url"`
		DryRun   bool   `yaml:"dry_run"`
	} `yaml:"sms"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
	} `yaml:"telegram"`
	Notify struct {
		// upper bound on a single notification send; a timed-out send is a
		// delivery failure, never a request failure
		TimeoutRaw string        `yaml:"timeout"` // e.g. "5s"
		Timeout    time.Duration `yaml:"-"`
	} `yaml:"notify"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	cfg.Auth.TokenTTL = parseDuration(cfg.Auth.TokenTTLRaw, 15*time.Minute)
	cfg.Notify.Timeout = parseDuration(cfg.Notify.TimeoutRaw, 5*time.Second)
	return &cfg
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic("Failed to parse duration " + raw + ": " + err.Error())
	}
	return d
}
