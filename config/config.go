// Package config loads and validates run settings
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Settings holds all tunables for a run
type Settings struct {
	WindowWidth      int      `json:"window_width"`
	WindowHeight     int      `json:"window_height"`
	ControlBarHeight float64  `json:"control_bar_height"`
	TPS              int      `json:"tps"`
	Speed            float64  `json:"speed"`
	BaseSize         float64  `json:"base_size"`
	InitialCount     int      `json:"initial_count"`
	SettleDelay      Duration `json:"settle_delay"`
	Seed             int64    `json:"seed"` // 0 seeds from the clock
	Background       bool     `json:"background"`
}

// Default returns the stock settings
func Default() Settings {
	return Settings{
		WindowWidth:      800,
		WindowHeight:     600,
		ControlBarHeight: 50,
		TPS:              60,
		Speed:            3,
		BaseSize:         20,
		InitialCount:     100,
		SettleDelay:      Duration(100 * time.Millisecond),
		Background:       true,
	}
}

// Validate reports the first invalid field
func (s Settings) Validate() error {
	switch {
	case s.WindowWidth <= 0 || s.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.WindowWidth, s.WindowHeight)
	case s.ControlBarHeight < 0 || s.ControlBarHeight >= float64(s.WindowHeight):
		return fmt.Errorf("control bar height %v must be in [0, %d)", s.ControlBarHeight, s.WindowHeight)
	case s.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", s.TPS)
	case s.BaseSize <= 0:
		return fmt.Errorf("base size %v must be positive", s.BaseSize)
	case s.Speed < 0:
		return fmt.Errorf("speed %v must not be negative", s.Speed)
	case s.InitialCount < 0:
		return fmt.Errorf("initial count %d must not be negative", s.InitialCount)
	case s.SettleDelay <= 0:
		return fmt.Errorf("settle delay %v must be positive", time.Duration(s.SettleDelay))
	}
	return nil
}

// Load reads settings from a JSON file over the defaults
// A missing file yields the defaults and no error
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings as indented JSON
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Duration is a time.Duration encoded as a Go duration string in JSON
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
