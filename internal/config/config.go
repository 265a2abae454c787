// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the YAML config when the CLI
// does not override it.
const DefaultPath = "configs/config.yaml"

type Config struct {
	//Account used for the authenticated search session
	LinkedInEmail    string `yaml:"linkedin_email" env:"LINKEDIN_EMAIL"`
	LinkedInPassword string `yaml:"linkedin_password" env:"LINKEDIN_PASSWORD"`
	//Digest delivery
	RecipientEmail string `yaml:"recipient_email" env:"RECIPIENT_EMAIL"`
	SMTPEmail      string `yaml:"smtp_email" env:"SMTP_EMAIL"`
	SMTPPassword   string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	SMTPHost       string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort       int    `yaml:"smtp_port" env:"SMTP_PORT"`
	//Optional Telegram side channel
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	//Search criteria
	Queries  []string            `yaml:"queries"`
	Personas map[string][]string `yaml:"personas"`
	Feeds    []string            `yaml:"feeds"`
	//Paths
	CookiesPath  string `yaml:"cookies_path"`
	CachePath    string `yaml:"cache_path"`
	LogsDir      string `yaml:"logs_dir"`
	SnapshotsDir string `yaml:"snapshots_dir"`
	//Headed launches a visible browser window (debugging only)
	Headed bool `yaml:"headed"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	//Override with env vars
	if v := os.Getenv("LINKEDIN_EMAIL"); v != "" {
		cfg.LinkedInEmail = v
	}
	if v := os.Getenv("LINKEDIN_PASSWORD"); v != "" {
		cfg.LinkedInPassword = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		cfg.RecipientEmail = v
	}
	if v := os.Getenv("SMTP_EMAIL"); v != "" {
		cfg.SMTPEmail = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTPPassword = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if len(cfg.Queries) == 0 {
		cfg.Queries = DefaultQueries
	}
	if len(cfg.Personas) == 0 {
		cfg.Personas = DefaultPersonas
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies/linkedin.json"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache/seen_leads.json"
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = "logs"
	}
	if cfg.SnapshotsDir == "" {
		cfg.SnapshotsDir = "snapshots"
	}

	//Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.LinkedInEmail == "" {
		missing = append(missing, "LINKEDIN_EMAIL")
	}
	if c.LinkedInPassword == "" {
		missing = append(missing, "LINKEDIN_PASSWORD")
	}
	if c.RecipientEmail == "" {
		missing = append(missing, "RECIPIENT_EMAIL")
	}
	if c.SMTPEmail == "" {
		missing = append(missing, "SMTP_EMAIL")
	}
	if c.SMTPPassword == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	for i, q := range c.Queries {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("search query #%d is blank", i+1)
		}
	}
	for name, keywords := range c.Personas {
		if len(keywords) == 0 {
			return fmt.Errorf("persona %q has no keywords", name)
		}
	}
	return nil
}

// TelegramEnabled reports whether the optional Telegram channel is fully
// configured. Token without chat ID (or vice versa) counts as disabled.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
