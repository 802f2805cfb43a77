package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the carousel tuning and deck source for coverflow.
type Config struct {
	Deck            string
	PollInterval    time.Duration
	MarginFraction  float64
	DragSensitivity float64
	TouchSlop       float64
	ShiftDuration   time.Duration
	SettleDuration  time.Duration
	FrameInterval   time.Duration
	Paging          bool
	LogFile         string
	LogLevel        string
}

const (
	defaultConfigPath = "~/.config/coverflow/config.toml"
	defaultDeck       = "~/.config/coverflow/deck.toml"
	defaultLogFile    = "~/.local/state/coverflow/coverflow.log"
	defaultLogLevel   = "info"

	defaultPollInterval    = 2 * time.Second
	defaultMarginFraction  = 0.05
	defaultDragSensitivity = 2.5
	defaultTouchSlop       = 1.0
	defaultShiftDuration   = time.Second
	defaultSettleDuration  = 300 * time.Millisecond
	defaultFrameInterval   = 16 * time.Millisecond

	maxMarginFraction = 0.45
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Deck:            mustExpand(defaultDeck),
		PollInterval:    defaultPollInterval,
		MarginFraction:  defaultMarginFraction,
		DragSensitivity: defaultDragSensitivity,
		TouchSlop:       defaultTouchSlop,
		ShiftDuration:   defaultShiftDuration,
		SettleDuration:  defaultSettleDuration,
		FrameInterval:   defaultFrameInterval,
		LogFile:         mustExpand(defaultLogFile),
		LogLevel:        defaultLogLevel,
	}
}

// Load locates and parses the coverflow config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Deck            string   `toml:"deck"`
		PollSeconds     float64  `toml:"poll_seconds"`
		MarginFraction  *float64 `toml:"margin_fraction"`
		DragSensitivity float64  `toml:"drag_sensitivity"`
		TouchSlop       float64  `toml:"touch_slop"`
		ShiftMS         int      `toml:"shift_ms"`
		SettleMS        *int     `toml:"settle_ms"`
		FrameMS         int      `toml:"frame_ms"`
		Paging          bool     `toml:"paging"`
		LogFile         string   `toml:"log_file"`
		LogLevel        string   `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if deck := strings.TrimSpace(raw.Deck); deck != "" {
		cfg.Deck = expandDeck(deck)
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds * float64(time.Second))
	}
	if raw.MarginFraction != nil {
		cfg.MarginFraction = clampFloat(*raw.MarginFraction, 0, maxMarginFraction)
	}
	if raw.DragSensitivity > 0 {
		cfg.DragSensitivity = raw.DragSensitivity
	}
	if raw.TouchSlop > 0 {
		cfg.TouchSlop = raw.TouchSlop
	}
	if raw.ShiftMS > 0 {
		cfg.ShiftDuration = time.Duration(raw.ShiftMS) * time.Millisecond
	}
	if raw.SettleMS != nil && *raw.SettleMS >= 0 {
		cfg.SettleDuration = time.Duration(*raw.SettleMS) * time.Millisecond
	}
	if raw.FrameMS > 0 {
		cfg.FrameInterval = time.Duration(raw.FrameMS) * time.Millisecond
	}
	cfg.Paging = raw.Paging
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// IsRemote reports whether the deck is served over HTTP.
func (c Config) IsRemote() bool {
	return isURL(c.Deck)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// expandDeck leaves URLs alone and expands file paths.
func expandDeck(deck string) string {
	if isURL(deck) {
		return deck
	}
	return mustExpand(deck)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
