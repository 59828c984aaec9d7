package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/mdrender/internal/htmlblock"
	"github.com/hyperifyio/mdrender/internal/output/pdfout"
	"github.com/hyperifyio/mdrender/internal/output/textout"
	"github.com/hyperifyio/mdrender/internal/parse"
	"github.com/hyperifyio/mdrender/internal/render"
)

// ErrNoInput is returned when no input file matched the configured patterns.
// The CLI maps it to exit code 2.
var ErrNoInput = errors.New("no input files matched")

type App struct {
	cfg     Config
	theme   render.Theme
	parser  *parse.Parser
	metrics *Metrics
	stdout  io.Writer
	now     func() time.Time
}

// inputFile is one resolved input and the directory its output path is
// mirrored from.
type inputFile struct {
	path string
	base string
}

// New validates cfg and prepares an App. Text rendered to "-" goes to stdout.
func New(cfg Config, stdout io.Writer) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	theme, err := buildTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &App{
		cfg:     cfg,
		theme:   theme,
		parser:  parse.New(),
		metrics: NewMetrics(),
		stdout:  stdout,
		now:     time.Now,
	}, nil
}

// Metrics returns the App's counters.
func (a *App) Metrics() *Metrics { return a.metrics }

// Run renders every input once and, in watch mode, keeps re-rendering changed
// inputs until ctx is cancelled. Per-file failures are logged and joined into
// the returned error; they do not stop the remaining files.
func (a *App) Run(ctx context.Context) error {
	inputs, err := a.resolveInputs()
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%s: %w", strings.Join(a.cfg.Inputs, ", "), ErrNoInput)
	}
	log.Debug().Int("count", len(inputs)).Msg("inputs resolved")

	var errs []error
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.renderFile(in); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.flushMetrics(); err != nil {
		errs = append(errs, err)
	}
	if a.cfg.Watch {
		if err := errors.Join(errs...); err != nil {
			log.Warn().Err(err).Msg("initial render had failures; watching anyway")
		}
		return a.watch(ctx, inputs)
	}
	return errors.Join(errs...)
}

// resolveInputs expands the configured patterns into a sorted, de-duplicated
// file list. Literal paths are taken as they are; everything else goes
// through doublestar so "**" matches nested directories.
func (a *App) resolveInputs() ([]inputFile, error) {
	seen := map[string]bool{}
	var out []inputFile
	add := func(path, base string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		out = append(out, inputFile{path: path, base: base})
	}
	for _, pattern := range a.cfg.Inputs {
		if !strings.ContainsAny(pattern, "*?[{") {
			info, err := os.Stat(pattern)
			if err != nil {
				log.Warn().Err(err).Str("input", pattern).Msg("skipping input")
				continue
			}
			if info.IsDir() {
				log.Warn().Str("input", pattern).Msg("skipping directory input; use a glob such as dir/**/*.md")
				continue
			}
			add(pattern, filepath.Dir(pattern))
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		base := globBase(pattern)
		for _, m := range matches {
			add(m, base)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out, nil
}

func (a *App) platform() render.Platform {
	return render.StaticPlatform{
		Grid:             a.cfg.Platform.Grid,
		NativeAttributes: a.cfg.Platform.NativeAttributes,
	}
}

func (a *App) formats() []string {
	switch a.cfg.Format {
	case FormatPDF:
		return []string{FormatPDF}
	case FormatBoth:
		return []string{FormatText, FormatPDF}
	default:
		return []string{FormatText}
	}
}

// renderFile parses one input and writes every configured output for it.
func (a *App) renderFile(in inputFile) error {
	start := a.now()
	err := a.renderFileOnce(in)
	a.metrics.renderSeconds.Observe(a.now().Sub(start).Seconds())
	if err != nil {
		a.metrics.renderFailures.Inc()
		log.Error().Err(err).Str("input", in.path).Msg("render failed")
	}
	return err
}

func (a *App) renderFileOnce(in inputFile) error {
	src, err := os.ReadFile(in.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", in.path, err)
	}
	stats := newFileStats()
	r := &render.Renderer{
		Router:      render.Router{Platform: a.platform()},
		Interpreter: htmlblock.PatternInterpreter{},
		Theme:       a.theme,
		Observer:    observers{stats, a.metrics},
	}
	doc := r.Document(a.parser.Parse(src))

	if a.cfg.OutputDir == "-" {
		if _, err := io.WriteString(a.stdout, textout.Render(doc, a.cfg.Width)); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		a.metrics.filesRendered.WithLabelValues(FormatText).Inc()
		return nil
	}

	var outputs []string
	for _, format := range a.formats() {
		ext := ".txt"
		if format == FormatPDF {
			ext = ".pdf"
		}
		path := deriveOutputPath(a.cfg.OutputDir, in.base, in.path, ext)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		switch format {
		case FormatPDF:
			err = pdfout.WriteFile(doc, path)
		default:
			err = os.WriteFile(path, []byte(textout.Render(doc, a.cfg.Width)), 0o644)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		a.metrics.filesRendered.WithLabelValues(format).Inc()
		outputs = append(outputs, path)
		log.Info().Str("input", in.path).Str("output", path).Msg("rendered")
	}

	if a.cfg.Manifest {
		meta := manifestMeta{
			Version:          BuildVersion,
			Format:           a.cfg.Format,
			Width:            a.cfg.Width,
			Grid:             a.cfg.Platform.Grid,
			NativeAttributes: a.cfg.Platform.NativeAttributes,
			GeneratedAt:      a.now().UTC(),
		}
		input := manifestInput{Path: in.path, SHA256: computeSHA256Hex(src), Bytes: len(src)}
		b, err := marshalManifestJSON(meta, input, stats, outputs)
		if err != nil {
			return fmt.Errorf("encode manifest: %w", err)
		}
		sidecar := deriveManifestSidecarPath(deriveOutputPath(a.cfg.OutputDir, in.base, in.path, ""))
		if err := os.WriteFile(sidecar, b, 0o644); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	return nil
}

func (a *App) flushMetrics() error {
	if a.cfg.MetricsPath == "" {
		return nil
	}
	if err := a.metrics.WriteFile(a.cfg.MetricsPath); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
