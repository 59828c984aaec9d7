package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/mdrender/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runMain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// runMain parses args, runs the app and maps the outcome to an exit code:
// 0 on success, 2 when no input matched, 1 on any other failure.
func runMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, showVersion, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error().Err(err).Msg("invalid arguments")
		return exitCode(err)
	}
	if showVersion {
		fmt.Fprintln(stdout, app.VersionString())
		return 0
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(ctx, cfg, stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if errors.Is(err, app.ErrNoInput) {
		return 2
	}
	return 1
}

func run(ctx context.Context, cfg app.Config, stdout io.Writer) error {
	a, err := app.New(cfg, stdout)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}

// parseConfig layers the configuration: built-in defaults, then the config
// file, then MDRENDER_* environment (after loading dotenv files), then the
// flags that were set explicitly. Positional arguments are extra inputs.
func parseConfig(args []string, stderr io.Writer) (app.Config, bool, error) {
	fs := flag.NewFlagSet("mdrender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputs        string
		outputDir     string
		format        string
		width         int
		grid          bool
		nativeAttrs   bool
		watch         bool
		watchDebounce time.Duration
		metricsPath   string
		manifest      bool
		configPath    string
		envFiles      string
		verbose       bool
		showVersion   bool
	)
	def := app.DefaultConfig()
	fs.StringVar(&inputs, "input", "", "Comma-separated Markdown files or globs (** supported); positional args are added")
	fs.StringVar(&outputDir, "out", def.OutputDir, "Output directory; '-' writes text to stdout")
	fs.StringVar(&format, "format", def.Format, "Output format: text, pdf or both")
	fs.IntVar(&width, "width", def.Width, "Text output width in columns")
	fs.BoolVar(&grid, "grid", false, "Render tables with the grid layout (box-drawing borders)")
	fs.BoolVar(&nativeAttrs, "native-attrs", false, "Build text attributes on the native path instead of the compat bridge")
	fs.BoolVar(&watch, "watch", false, "Re-render inputs when they change")
	fs.DurationVar(&watchDebounce, "watch.debounce", def.WatchDebounce, "Quiet period before re-rendering changed inputs")
	fs.StringVar(&metricsPath, "metrics", "", "Write Prometheus text-format metrics to this file after each run")
	fs.BoolVar(&manifest, "manifest", false, "Write a JSON manifest next to each output")
	fs.StringVar(&configPath, "config", os.Getenv("MDRENDER_CONFIG"), "Path to YAML or JSON config file")
	fs.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading MDRENDER_* variables")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return app.Config{}, false, err
	}
	if showVersion {
		return app.Config{}, true, nil
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		return app.Config{}, false, err
	}

	cfg := def
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return app.Config{}, false, fmt.Errorf("load config %s: %w", configPath, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvOverrides(&cfg)

	// Explicit flags win over file and env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Inputs = splitList(inputs)
		case "out":
			cfg.OutputDir = outputDir
		case "format":
			cfg.Format = strings.ToLower(strings.TrimSpace(format))
		case "width":
			cfg.Width = width
		case "grid":
			cfg.Platform.Grid = grid
		case "native-attrs":
			cfg.Platform.NativeAttributes = nativeAttrs
		case "watch":
			cfg.Watch = watch
		case "watch.debounce":
			cfg.WatchDebounce = watchDebounce
		case "metrics":
			cfg.MetricsPath = metricsPath
		case "manifest":
			cfg.Manifest = manifest
		case "v":
			cfg.Verbose = verbose
		}
	})
	cfg.Inputs = append(cfg.Inputs, fs.Args()...)
	return cfg, false, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
