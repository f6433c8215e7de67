package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Physics holds the force-directed layout constants for the interactive
// view. The defaults keep large graphs from bouncing endlessly.
type Physics struct {
	GravitationalConstant int     `yaml:"gravitational_constant"`
	SpringLength          int     `yaml:"spring_length"`
	SpringConstant        float64 `yaml:"spring_constant"`
	AvoidOverlap          float64 `yaml:"avoid_overlap"`
	MinVelocity           float64 `yaml:"min_velocity"`
}

type Config struct {
	Scan struct {
		Ignore []string `yaml:"ignore"` // directory names skipped during the walk
	} `yaml:"scan"`
	Render struct {
		Height  string  `yaml:"height"` // interactive canvas height
		Layout  string  `yaml:"layout"` // graphviz layout engine for static output
		Physics Physics `yaml:"physics"`
	} `yaml:"render"`
	DB string `yaml:"db"` // snapshot database path
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.Scan.Ignore = []string{".git"}
	cfg.Render.Height = "1000px"
	cfg.Render.Layout = "dot"
	cfg.Render.Physics = Physics{
		GravitationalConstant: -30000,
		SpringLength:          100,
		SpringConstant:        0.04,
		AvoidOverlap:          1,
		MinVelocity:           0.75,
	}
	cfg.DB = "confviz.db"
	return &cfg
}

// LoadConfig reads the YAML config file, layering it over the defaults.
// A missing file is not an error. Environment variables win last.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// 3. Override with Environment Variables if present
	if db := os.Getenv("CONFVIZ_DB"); db != "" {
		cfg.DB = db
	}

	return cfg, nil
}
