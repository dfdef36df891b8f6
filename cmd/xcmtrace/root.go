package main

import (
	"io"

	"github.com/danmuck/xcmtrace/internal/config"
	"github.com/danmuck/xcmtrace/internal/input"
	"github.com/danmuck/xcmtrace/internal/logging"
	"github.com/danmuck/xcmtrace/internal/trace"
	"github.com/danmuck/xcmtrace/internal/xcm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath      string
	format          string
	strict          bool
	maxDepth        int
	maxInstructions int
	verbose         bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "xcmtrace [flags] <hex>",
		Short: "Print the instruction trace of a hex-encoded versioned XCM message",
		Long: `xcmtrace decodes a hex-encoded VersionedXcm (v2 or v3) and prints the
instruction names in order, comma separated and prefixed with the version.
SetErrorHandler and SetAppendix show their nested instructions in parentheses.

The hex argument may carry a 0x prefix and is case-insensitive. Pass "-" to
read it from stdin.

Example:
  xcmtrace 0x020415040a
  v2,SetErrorHandler(ClearOrigin)`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			configureLogging(cfg, opts.verbose, stderr)
			return run(cfg, args[0], stdin, stdout)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default $"+config.EnvConfigPath+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log decoder diagnostics to stderr")

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", def.Output.Format, "output format: text | json | yaml")
	flags.BoolVar(&opts.strict, "strict", def.Decode.Strict, "reject bytes left after the message")
	flags.IntVar(&opts.maxDepth, "max-depth", def.Decode.MaxDepth, "maximum instruction sequence nesting")
	flags.IntVar(&opts.maxInstructions, "max-instructions", def.Decode.MaxInstructions, "maximum instructions per v3 sequence (0 disables)")

	cmd.AddCommand(newOpcodesCmd(), newConfigCmd(opts))
	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if path := config.ResolvePath(opts.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("strict") {
		cfg.Decode.Strict = opts.strict
	}
	if flags.Changed("max-depth") {
		cfg.Decode.MaxDepth = opts.maxDepth
	}
	if flags.Changed("max-instructions") {
		cfg.Decode.MaxInstructions = opts.maxInstructions
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func configureLogging(cfg config.Config, verbose bool, stderr io.Writer) {
	level, ok := logging.ParseLevel(cfg.Log.Level)
	if !ok {
		level = zerolog.WarnLevel
	}
	logging.ConfigureRuntime(
		logging.WithLevel(level),
		logging.WithVerbose(verbose),
		logging.WithOutput(stderr),
	)
}

func run(cfg config.Config, arg string, stdin io.Reader, stdout io.Writer) error {
	raw, err := input.Resolve(arg, stdin)
	if err != nil {
		return err
	}
	b, err := input.DecodeHex(raw)
	if err != nil {
		return err
	}
	msg, err := xcm.Decode(b, cfg.Limits())
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	log.Debug().Str("format", string(format)).Msg("xcmtrace render")
	return trace.Write(stdout, msg, format)
}
