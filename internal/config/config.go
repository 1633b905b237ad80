package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Telegram
	TelegramToken string

	// Database
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Discovery
	SweepInterval    time.Duration // timer between full user sweeps
	SourceTimeout    time.Duration // per-adapter HTTP budget within one run
	MaxMatchesPerRun int
	ScoringRulesPath string // YAML weights/keywords; empty = built-in defaults
	LocationsAllow   []string

	// Source backends
	GreenhouseBoards []string // board slugs on boards-api.greenhouse.io
	LeverOrgs        []string // org slugs on api.lever.co
	AdzunaAppID      string
	AdzunaAppKey     string
	AdzunaCountry    string
	AdzunaWhat       string // search query sent to Adzuna, e.g. "manager"

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		SweepInterval:    6 * time.Hour,
		SourceTimeout:    10 * time.Second,
		MaxMatchesPerRun: 10,
		AdzunaCountry:    "in",
		LogLevel:         "info",
		RedisDB:          0,
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	} else {
		cfg.RedisAddr = "localhost:6379"
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if interval := os.Getenv("SWEEP_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
		}
		cfg.SweepInterval = d
	}

	if timeout := os.Getenv("SOURCE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid SOURCE_TIMEOUT: %w", err)
		}
		cfg.SourceTimeout = d
	}

	if maxMatches := os.Getenv("MAX_MATCHES_PER_RUN"); maxMatches != "" {
		n, err := strconv.Atoi(maxMatches)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_MATCHES_PER_RUN: %w", err)
		}
		cfg.MaxMatchesPerRun = n
	}

	cfg.ScoringRulesPath = os.Getenv("SCORING_RULES_PATH")
	cfg.LocationsAllow = splitList(os.Getenv("LOCATIONS_ALLOW"))

	cfg.GreenhouseBoards = splitList(os.Getenv("GREENHOUSE_BOARDS"))
	cfg.LeverOrgs = splitList(os.Getenv("LEVER_ORGS"))
	cfg.AdzunaAppID = os.Getenv("ADZUNA_APP_ID")
	cfg.AdzunaAppKey = os.Getenv("ADZUNA_APP_KEY")
	if country := os.Getenv("ADZUNA_COUNTRY"); country != "" {
		cfg.AdzunaCountry = country
	}
	cfg.AdzunaWhat = os.Getenv("ADZUNA_WHAT")

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("telegram token is empty")
	}

	if c.PostgresDSN == "" {
		return fmt.Errorf("postgres DSN is empty")
	}

	if c.SweepInterval < time.Minute {
		return fmt.Errorf("sweep interval too small: %v", c.SweepInterval)
	}

	if c.SourceTimeout < time.Second {
		return fmt.Errorf("source timeout too small: %v", c.SourceTimeout)
	}

	if c.MaxMatchesPerRun < 1 || c.MaxMatchesPerRun > 100 {
		return fmt.Errorf("max matches per run must be between 1 and 100")
	}

	if len(c.GreenhouseBoards) == 0 && len(c.LeverOrgs) == 0 && c.AdzunaAppID == "" {
		return fmt.Errorf("no job sources configured")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
