package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the diagnostics settings of the library. Numeric behaviour is
// never configurable: only how much the library reports about itself.
type Config struct {
	// LogLevel is one of debug, info, warn, error or fatal.
	LogLevel        string `toml:"log_level"`
	ReportCaller    bool   `toml:"report_caller"`
	ReportTimestamp bool   `toml:"report_timestamp"`
	Prefix          string `toml:"prefix"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:        "warn",
		ReportCaller:    false,
		ReportTimestamp: true,
		Prefix:          "spl",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := cfg.level(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

// Apply reconfigures the library logger.
func (c Config) Apply() error {
	level, err := c.level()
	if err != nil {
		return err
	}
	configureLogger(c, level)
	return nil
}

// WatchConfig applies the file at path and keeps applying it every time it is
// written, until ctx is done. onChange, when not nil, is called after every
// successful reload. The returned channel is closed once the watcher stops.
func WatchConfig(ctx context.Context, path string, onChange func(Config)) (<-chan struct{}, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace files instead of writing them, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	target := filepath.Clean(path)

	go func() {
		defer close(done)
		defer watcher.Close()
		for {
			select {
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != target {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					LogWarn("config reload failed: %s", err)
					continue
				}
				if err := cfg.Apply(); err != nil {
					LogWarn("config apply failed: %s", err)
					continue
				}
				LogDebug("config %s reloaded", path)
				if onChange != nil {
					onChange(cfg)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logWatchError(err)
			case <-ctx.Done():
				return
			}
		}
	}()

	return done, nil
}

func logWatchError(err error) {
	LogError("config watch: %s", err)
}
