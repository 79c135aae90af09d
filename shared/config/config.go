package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI         AIConfig         `yaml:"ai"`
	Scanner    ScannerConfig    `yaml:"scanner"`
	Security   SecurityConfig   `yaml:"security"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Schedule   string           `yaml:"schedule"`
}

type AIConfig struct {
	GeminiAPIKey   string  `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model          string  `yaml:"model"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	MinConfidence  float64 `yaml:"min_confidence"`
}

type ScannerConfig struct {
	IntakeDir     string `yaml:"intake_dir"`
	ArchiveDir    string `yaml:"archive_dir"`
	OutputDir     string `yaml:"output_dir"`
	DataDir       string `yaml:"data_dir"`
	MaxImageBytes int64  `yaml:"max_image_bytes"`
}

type SecurityConfig struct {
	EncryptionKey  string `yaml:"encryption_key" env:"ENCRYPTION_KEY"`
	MaxAuditEvents int    `yaml:"max_audit_events"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Security.EncryptionKey == "" {
		cfg.Security.EncryptionKey = os.Getenv("ENCRYPTION_KEY")
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.AI.MinConfidence == 0 {
		c.AI.MinConfidence = 0.7
	}
	if c.Scanner.IntakeDir == "" {
		c.Scanner.IntakeDir = "intake"
	}
	if c.Scanner.ArchiveDir == "" {
		c.Scanner.ArchiveDir = "archive"
	}
	if c.Scanner.OutputDir == "" {
		c.Scanner.OutputDir = "extracted"
	}
	if c.Scanner.DataDir == "" {
		c.Scanner.DataDir = "data"
	}
	if c.Scanner.MaxImageBytes == 0 {
		c.Scanner.MaxImageBytes = 10 << 20 // 10 MB per submission
	}
	if c.Security.MaxAuditEvents == 0 {
		c.Security.MaxAuditEvents = 1000
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
	if c.Schedule == "" {
		c.Schedule = "0 * * * * *" // Every minute (seconds field included)
	}
}

func (c *Config) validate() error {
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	if c.Security.EncryptionKey == "" {
		return fmt.Errorf("encryption key is required (set ENCRYPTION_KEY or security.encryption_key)")
	}
	if c.AI.MinConfidence < 0 || c.AI.MinConfidence > 1 {
		return fmt.Errorf("ai.min_confidence must be between 0 and 1, got %v", c.AI.MinConfidence)
	}
	return nil
}
