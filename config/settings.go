package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/layout"
	"github.com/gogpu/vgbuf/memory"
)

// Environment variables read by LoadSettings.
const (
	EnvAddressAlignment = "VGBUF_ADDR_ALIGN"
	EnvMemoryLimit      = "VGBUF_MEMORY_LIMIT"
	EnvAllocator        = "VGBUF_ALLOCATOR"
	EnvLogLevel         = "VGBUF_LOG_LEVEL"
)

// Settings are process-wide knobs for the buffer allocator.
type Settings struct {
	// AddressAlignment is the base address alignment in bytes.
	AddressAlignment int

	// MemoryLimit caps bytes in use. Zero means unlimited.
	MemoryLimit int

	// Allocator is "heap" or "mmap".
	Allocator string

	LogLevel slog.Level
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		AddressAlignment: layout.DefaultAddressAlignment,
		Allocator:        "heap",
		LogLevel:         slog.LevelInfo,
	}
}

// LoadSettings loads the given .env files, or ./.env if none are given and
// it exists, then reads settings from the environment. Variables already
// present in the environment take precedence over the files.
func LoadSettings(files ...string) (Settings, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Settings{}, fmt.Errorf("config: load settings: %w", err)
	}
	return SettingsFromEnv(os.Getenv)
}

// SettingsFromEnv builds Settings from a variable lookup function.
func SettingsFromEnv(getenv func(string) string) (Settings, error) {
	s := DefaultSettings()
	if v := getenv(EnvAddressAlignment); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, invalid(EnvAddressAlignment, v, err)
		}
		if err := layout.ValidateAddressAlignment(n); err != nil {
			return Settings{}, fmt.Errorf("config: %s: %w", EnvAddressAlignment, err)
		}
		s.AddressAlignment = n
	}
	if v := getenv(EnvMemoryLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Settings{}, invalid(EnvMemoryLimit, v, err)
		}
		s.MemoryLimit = n
	}
	if v := getenv(EnvAllocator); v != "" {
		v = strings.ToLower(v)
		if v != "heap" && v != "mmap" {
			return Settings{}, invalid(EnvAllocator, v, nil)
		}
		s.Allocator = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Settings{}, invalid(EnvLogLevel, v, err)
		}
	}
	return s, nil
}

// Memory builds the memory allocator the settings describe.
func (s Settings) Memory() (memory.Allocator, error) {
	var m memory.Allocator
	switch s.Allocator {
	case "", "heap":
		m = memory.NewHeap()
	case "mmap":
		mm, err := memory.NewMmap()
		if err != nil {
			return nil, fmt.Errorf("config: mmap allocator: %w", err)
		}
		m = mm
	default:
		return nil, invalid("allocator", s.Allocator, nil)
	}
	if s.MemoryLimit > 0 {
		m = memory.NewLimited(m, s.MemoryLimit)
	}
	return m, nil
}

// Options converts the settings to allocator options.
func (s Settings) Options() ([]vgbuf.Option, error) {
	m, err := s.Memory()
	if err != nil {
		return nil, err
	}
	return []vgbuf.Option{
		vgbuf.WithAddressAlignment(s.AddressAlignment),
		vgbuf.WithMemory(m),
	}, nil
}
