// Package config resolves startup settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds everything resolved before the session starts.
type Config struct {
	Width        int
	Height       int
	TrackerURL   string
	Difficulty   string
	MasterVolume float64
	Muted        bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:        1280,
		Height:       720,
		TrackerURL:   "ws://127.0.0.1:9130/landmarks",
		Difficulty:   "Normal",
		MasterVolume: 0.8,
		Muted:        false,
	}
}

// Load reads QUICKDRAW_* environment variables over the defaults.
// Malformed values keep the default.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("QUICKDRAW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Width = n
		}
	}
	if v := os.Getenv("QUICKDRAW_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Height = n
		}
	}
	if v := os.Getenv("QUICKDRAW_TRACKER_URL"); v != "" {
		cfg.TrackerURL = v
	}
	if v := os.Getenv("QUICKDRAW_DIFFICULTY"); v != "" {
		cfg.Difficulty = v
	}
	if v := os.Getenv("QUICKDRAW_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}
			cfg.MasterVolume = f
		}
	}
	if v := os.Getenv("QUICKDRAW_MUTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Muted = b
		}
	}

	return cfg
}
