package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	StartYear      int
	EndYear        int
	OutputDir      string
	ListURI        string
	InfoURI        string
	RequestTimeout time.Duration

	LogLevel  string
	LogFormat string

	// PushgatewayURL enables pushing run metrics when set.
	PushgatewayURL string

	// Kafka export of season summaries, enabled when brokers are set.
	KafkaBrokers      []string
	KafkaSummaryTopic string

	// ServeAddr enables the report preview server when set.
	ServeAddr       string
	ShutdownTimeout time.Duration
}

// KafkaEnabled reports whether season summaries should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from an optional .env file and environment
// variables, applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables take precedence.
	_ = godotenv.Load()

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	startYear, err := parseInt("START_YEAR", "1949")
	if err != nil {
		return nil, err
	}
	endYear, err := parseInt("END_YEAR", "2021")
	if err != nil {
		return nil, err
	}
	timeoutMs, err := parseInt("REQUEST_TIMEOUT_MS", "10000")
	if err != nil {
		return nil, err
	}
	if timeoutMs <= 0 {
		return nil, errors.New("invalid REQUEST_TIMEOUT_MS: must be positive")
	}

	var brokers []string
	if raw := sharedcfg.EnvOrDefault("KAFKA_BROKERS", ""); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}

	cfg := &Config{
		StartYear:      startYear,
		EndYear:        endYear,
		OutputDir:      sharedcfg.EnvOrDefault("OUTPUT_DIR", "./data/"),
		ListURI:        sharedcfg.EnvOrDefault("TYPHOON_LIST_URI", "http://typhoon.zjwater.gov.cn/Api/TyphoonList/"),
		InfoURI:        sharedcfg.EnvOrDefault("TYPHOON_INFO_URI", "http://typhoon.zjwater.gov.cn/Api/TyphoonInfo/"),
		RequestTimeout: time.Duration(timeoutMs) * time.Millisecond,

		LogLevel:  sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),

		PushgatewayURL: sharedcfg.EnvOrDefault("PUSHGATEWAY_URL", ""),

		KafkaBrokers:      brokers,
		KafkaSummaryTopic: sharedcfg.EnvOrDefault("KAFKA_SUMMARY_TOPIC", "typhoon-season-summaries"),

		ServeAddr:       sharedcfg.EnvOrDefault("SERVE_ADDR", ""),
		ShutdownTimeout: shutdownTimeout,
	}

	if cfg.StartYear > cfg.EndYear {
		return nil, fmt.Errorf("START_YEAR %d is after END_YEAR %d", cfg.StartYear, cfg.EndYear)
	}
	if cfg.ListURI == "" {
		return nil, errors.New("TYPHOON_LIST_URI is required")
	}
	if cfg.InfoURI == "" {
		return nil, errors.New("TYPHOON_INFO_URI is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.KafkaEnabled() && cfg.KafkaSummaryTopic == "" {
		return nil, errors.New("KAFKA_SUMMARY_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func parseInt(key, def string) (int, error) {
	n, err := strconv.Atoi(sharedcfg.EnvOrDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
