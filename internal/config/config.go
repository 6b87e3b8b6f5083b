package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/doctor-call/cli/internal/api"
)

// EnvBackendURL overrides the configured backend URL.
const EnvBackendURL = "DOCTORCALL_BACKEND_URL"

// Config holds CLI configuration stored at ~/.doctorcall/config.
type Config struct {
	BackendURL         string        `yaml:"backend_url"`
	HealthTimeout      time.Duration `yaml:"health_timeout,omitempty"`
	CallTimeout        time.Duration `yaml:"call_timeout,omitempty"`
	DefaultDoctorID    string        `yaml:"default_doctor_id,omitempty"`
	DefaultDoctorName  string        `yaml:"default_doctor_name,omitempty"`
	DefaultPatientID   string        `yaml:"default_patient_id,omitempty"`
	DefaultPatientName string        `yaml:"default_patient_name,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BackendURL:         api.DefaultBaseURL,
		HealthTimeout:      api.DefaultHealthTimeout,
		CallTimeout:        api.DefaultCallTimeout,
		DefaultDoctorID:    "184",
		DefaultDoctorName:  "Akbar Niazi",
		DefaultPatientID:   "3",
		DefaultPatientName: "Hamza Amin",
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".doctorcall", "config")
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies .env and environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		cfg.BackendURL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads only the stored config, filling unset fields with
// defaults. Environment overrides are not applied.
func LoadFile() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if strings.TrimSpace(c.BackendURL) == "" {
		c.BackendURL = def.BackendURL
	}
	if c.HealthTimeout <= 0 {
		c.HealthTimeout = def.HealthTimeout
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = def.CallTimeout
	}
	if c.DefaultDoctorID == "" {
		c.DefaultDoctorID = def.DefaultDoctorID
	}
	if c.DefaultDoctorName == "" {
		c.DefaultDoctorName = def.DefaultDoctorName
	}
	if c.DefaultPatientID == "" {
		c.DefaultPatientID = def.DefaultPatientID
	}
	if c.DefaultPatientName == "" {
		c.DefaultPatientName = def.DefaultPatientName
	}
}

// Validate checks that the backend URL is an absolute http(s) URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend_url %q: %w", c.BackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend_url %q: want http(s)://host[:port]", c.BackendURL)
	}
	return nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
