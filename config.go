package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".scrawl.yaml"

// Config is the on-disk startup configuration.
type Config struct {
	PenSize      int      `yaml:"pen_size"`
	Color        string   `yaml:"color"`
	Alpha        *float64 `yaml:"alpha"`
	OffsetX      int      `yaml:"offset_x"`
	OffsetY      int      `yaml:"offset_y"`
	HistoryLimit int      `yaml:"history_limit"`
	LogFile      string   `yaml:"log_file"`
	LogLevel     string   `yaml:"log_level"`
}

func (c *Config) defaults() {
	if c.PenSize <= 0 {
		c.PenSize = defaultPenSize
	}
	if c.Color == "" {
		c.Color = defaultColor
	}
	if c.Alpha == nil {
		a := defaultAlpha
		c.Alpha = &a
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// loadConfig reads the YAML config at path, or ~/.scrawl.yaml when path is
// empty. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := &Config{}

	homeDir, homeErr := os.UserHomeDir()
	if path == "" {
		if homeErr != nil {
			config.defaults()
			return config, nil
		}
		path = filepath.Join(homeDir, configFileName)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		config.defaults()
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if strings.HasPrefix(config.LogFile, "~") && homeErr == nil {
		config.LogFile = filepath.Join(homeDir, strings.TrimPrefix(config.LogFile, "~"))
	}
	config.defaults()
	return config, nil
}

// Settings is the live drawing configuration. The controls write it, and
// every draw operation reads the latest values.
type Settings struct {
	PenSize int
	Color   string
	Alpha   float64
	OffsetX int
	OffsetY int
}

func NewSettings(c *Config) *Settings {
	s := &Settings{
		PenSize: defaultPenSize,
		Color:   defaultColor,
		Alpha:   defaultAlpha,
	}
	if c == nil {
		return s
	}
	s.PenSize = c.PenSize
	s.Color = c.Color
	if c.Alpha != nil {
		s.Alpha = *c.Alpha
	}
	s.OffsetX = c.OffsetX
	s.OffsetY = c.OffsetY
	return s
}

func (s *Settings) SetPenSize(n int) { s.PenSize = n }

func (s *Settings) SetColor(hex string) { s.Color = hex }

func (s *Settings) SetAlpha(a float64) { s.Alpha = a }

func (s *Settings) SetOffset(x, y int) {
	s.OffsetX = x
	s.OffsetY = y
}

// Paint resolves the current colour and alpha.
func (s *Settings) Paint() Paint {
	return resolvePaint(s.Color, s.Alpha)
}

func parsePenSize(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("pen size %q: %w", text, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("pen size %d: must be at least 1", n)
	}
	return n, nil
}

func parseAlpha(text string) (float64, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("alpha %q: %w", text, err)
	}
	if math.IsNaN(a) {
		return 0, fmt.Errorf("alpha %q: not a number", text)
	}
	return clamp(a, 0, 1), nil
}

func parseOffset(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("offset %q: %w", text, err)
	}
	return n, nil
}
