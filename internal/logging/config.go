package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "XCMTRACE_LOG_LEVEL"
	EnvLogTimestamp = "XCMTRACE_LOG_TIMESTAMP"
	EnvLogNoColor   = "XCMTRACE_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Out       io.Writer
	// Verbose raises Level to at least debug after env overrides.
	Verbose bool
}

// Option adjusts the profile defaults before env overrides apply.
type Option func(*Config)

func WithLevel(level zerolog.Level) Option {
	return func(cfg *Config) { cfg.Level = level }
}

func WithVerbose(verbose bool) Option {
	return func(cfg *Config) { cfg.Verbose = verbose }
}

func WithOutput(w io.Writer) Option {
	return func(cfg *Config) { cfg.Out = w }
}

var configureOnce sync.Once

func ConfigureRuntime(opts ...Option) {
	Configure(ProfileRuntime, opts...)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global logger once per process. Later calls are
// no-ops, so the first caller (a test bootstrap or main) decides the setup.
func Configure(profile Profile, opts ...Option) {
	configureOnce.Do(func() {
		cfg := resolve(profile, opts...)
		log.Logger = New(cfg, profile)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// resolve layers profile defaults, options and env overrides. Verbose is
// applied last so an explicit -v beats XCMTRACE_LOG_LEVEL.
func resolve(profile Profile, opts ...Option) Config {
	cfg := defaultConfig(profile)
	for _, opt := range opts {
		opt(&cfg)
	}
	applyEnvOverrides(&cfg)
	if cfg.Verbose && cfg.Level > zerolog.DebugLevel {
		cfg.Level = zerolog.DebugLevel
	}
	return cfg
}

// New builds a console logger writing to cfg.Out. Runtime loggers carry a
// per-invocation run id.
func New(cfg Config, profile Profile) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        cfg.Out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		out.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With().Str("app", "xcmtrace")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if profile == ProfileRuntime {
		ctx = ctx.Str("run", uuid.NewString())
	}
	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	cfg := Config{Out: os.Stderr}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
		cfg.NoColor = true
	default:
		cfg.Level = zerolog.WarnLevel
		cfg.Timestamp = true
		cfg.NoColor = !isTerminal(os.Stderr)
	}
	return cfg
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
