// Package config manages application configuration and the on-disk
// API-key fallback.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds application configuration for a run.
//
// Source priority:
//  1. explicit path passed to Load;
//  2. the CONFIG_PATH environment variable;
//  3. ./local.yaml in the working directory;
//  4. environment variables only.
type Config struct {
	// APIKey is the YouTube Data API key. When empty the CLI falls
	// back to the -k flag and then the key file.
	APIKey string `yaml:"api_key" env:"YTSUM_API_KEY"`

	// KeyFile is the plain-text key file consulted when no key is
	// supplied any other way. The file must be small and the first
	// whitespace-delimited token is used.
	KeyFile string `yaml:"key_file" env:"YTSUM_KEY_FILE" env-default:"config/key.txt"`

	// Output is the report file. On success it holds the CSV listing;
	// on failure it holds the last raw API response.
	Output string `yaml:"output" env:"YTSUM_OUTPUT" env-default:"output.txt"`

	// RequestsPerSecond paces API calls. Zero disables pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"YTSUM_RPS" env-default:"5"`
}

// Load loads configuration following the documented source priority.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be non-negative")
	}
	return nil
}

// maxKeyFileSize rejects files that plainly hold more than a key.
const maxKeyFileSize = 128

// LoadKeyFile reads an API key from a plain-text file. The file must
// be a regular file, non-empty and smaller than 128 bytes; the first
// whitespace-delimited token of the first line is the key.
func LoadKeyFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("key file %s is not a regular file", path)
	}
	switch size := info.Size(); {
	case size == 0:
		return "", fmt.Errorf("key file %s is empty", path)
	case size >= maxKeyFileSize:
		return "", fmt.Errorf("key file %s looks too large to only contain a key (%d bytes)", path, size)
	}

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read key file %s: %w", path, err)
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("key file %s contains no key", path)
	}
	return fields[0], nil
}
