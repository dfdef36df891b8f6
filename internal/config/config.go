package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/xcmtrace/internal/logging"
	"github.com/danmuck/xcmtrace/internal/trace"
	"github.com/danmuck/xcmtrace/internal/xcm"
)

// EnvConfigPath names a config file when --config is not given.
const EnvConfigPath = "XCMTRACE_CONFIG"

// MaxDepthLimit is the largest accepted decode.max_depth.
const MaxDepthLimit = xcm.MaxDepthLimit

type Config struct {
	Decode DecodeConfig `toml:"decode"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type DecodeConfig struct {
	MaxDepth        int  `toml:"max_depth"`
	MaxInstructions int  `toml:"max_instructions"`
	Strict          bool `toml:"strict"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	limits := xcm.DefaultLimits()
	return Config{
		Decode: DecodeConfig{
			MaxDepth:        limits.MaxDepth,
			MaxInstructions: limits.MaxInstructions,
			Strict:          limits.Strict,
		},
		Output: OutputConfig{Format: string(trace.FormatText)},
		Log:    LogConfig{Level: "warn"},
	}
}

// Limits converts the decode section into decoder limits.
func (c Config) Limits() xcm.Limits {
	return xcm.Limits{
		MaxDepth:        c.Decode.MaxDepth,
		MaxInstructions: c.Decode.MaxInstructions,
		Strict:          c.Decode.Strict,
	}
}

// ResolvePath picks the config path: explicit flag first, then the
// environment. An empty result means no config file.
func ResolvePath(flagPath string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads path and applies every key it defines on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("decode", "max_depth") {
		cfg.Decode.MaxDepth = raw.Decode.MaxDepth
	}
	if meta.IsDefined("decode", "max_instructions") {
		cfg.Decode.MaxInstructions = raw.Decode.MaxInstructions
	}
	if meta.IsDefined("decode", "strict") {
		cfg.Decode.Strict = raw.Decode.Strict
	}
	if meta.IsDefined("output", "format") {
		cfg.Output.Format = strings.TrimSpace(raw.Output.Format)
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Decode.MaxDepth < 1 || cfg.Decode.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("decode.max_depth must be between 1 and %d, got %d", MaxDepthLimit, cfg.Decode.MaxDepth)
	}
	if cfg.Decode.MaxInstructions < 0 {
		return fmt.Errorf("decode.max_instructions must not be negative, got %d", cfg.Decode.MaxInstructions)
	}
	if _, err := trace.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if strings.TrimSpace(cfg.Log.Level) != "" {
		if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
			return fmt.Errorf("log.level unknown: %q", cfg.Log.Level)
		}
	}
	return nil
}
