package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/streambinder/ytfetch/sys"
	"github.com/streambinder/ytfetch/sys/cmd"
)

const prefix = "ytfetch"

// Config holds the settings resolved once at startup.
// Each field can be overridden through YTFETCH_* environment variables.
type Config struct {
	Downloader string `envconfig:"DOWNLOADER" default:"yt-dlp"`
	Transcoder string `envconfig:"TRANSCODER" default:"ffmpeg"`
	OutputDir  string `envconfig:"OUTPUT_DIR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(prefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = sys.DownloadsDirectory()
	}
	return cfg, nil
}

// Dependencies lists the executables that must be runnable
// before any download is attempted
func (cfg *Config) Dependencies() []cmd.Dependency {
	return []cmd.Dependency{
		{Name: cfg.Downloader, VersionFlag: "--version", Package: "yt-dlp"},
		{Name: cfg.Transcoder, VersionFlag: "-version", Package: "ffmpeg"},
	}
}

// DependencyPackages returns the names to suggest for installation,
// regardless of where the configured executables live
func (cfg *Config) DependencyPackages() []string {
	var packages []string
	for _, dependency := range cfg.Dependencies() {
		packages = append(packages, dependency.Package)
	}
	return packages
}
