package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Output OutputConfig `json:"output"`
	Batch  BatchConfig  `json:"batch"`
	Video  VideoConfig  `json:"video"`
	Watch  WatchConfig  `json:"watch"`
}

// OutputConfig holds configuration for the exported frames
type OutputConfig struct {
	Prefix   string `json:"prefix"`
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
}

// BatchConfig holds configuration for batch execution
type BatchConfig struct {
	// Workers is the number of files processed at once. 1 keeps the
	// strictly sequential discipline of the original pipeline.
	Workers int `json:"workers"`
}

// VideoConfig holds configuration for time-lapse assembly
type VideoConfig struct {
	InputFPS   int  `json:"input_fps"`
	OutputFPS  int  `json:"output_fps"`
	KeepFrames bool `json:"keep_frames"`
}

// WatchConfig holds configuration for watch mode
type WatchConfig struct {
	DebounceMs int `json:"debounce_ms"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Prefix:  "processed_",
			Format:  "jpg",
			Quality: 90,
		},
		Batch: BatchConfig{
			Workers: 1,
		},
		Video: VideoConfig{
			InputFPS:  4,
			OutputFPS: 30,
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.format must be one of jpg, png, webp")
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be positive")
	}

	if c.Video.InputFPS < 1 {
		return fmt.Errorf("video.input_fps must be positive")
	}

	if c.Video.OutputFPS < 1 {
		return fmt.Errorf("video.output_fps must be positive")
	}

	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms cannot be negative")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "batch-annotator", "config.json")
}
