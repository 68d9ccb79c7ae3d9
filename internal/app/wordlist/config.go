package wordlist

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds import pipeline settings.
type Config struct {
	WordListPath string `yaml:"wordlist_path" env:"WORDLIST_PATH"`
	BatchSize    int    `yaml:"batch_size"    env:"WORDLIST_BATCH_SIZE" env-default:"500"`
	Workers      int    `yaml:"workers"       env:"WORDLIST_WORKERS"    env-default:"4"`
	DryRun       bool   `yaml:"dry_run"       env:"WORDLIST_DRY_RUN"`
}

// LoadConfig reads pipeline configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("wordlist config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("wordlist config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("wordlist config: read env: %w", err)
	}

	return &cfg, nil
}
