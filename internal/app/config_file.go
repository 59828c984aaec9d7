package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Inputs []string `yaml:"inputs" json:"inputs"`

	Output struct {
		Dir    string `yaml:"dir" json:"dir"`
		Format string `yaml:"format" json:"format"`
		Width  int    `yaml:"width" json:"width"`
		// Manifest enables the JSON sidecar next to each output.
		Manifest bool `yaml:"manifest" json:"manifest"`
	} `yaml:"output" json:"output"`

	Platform *PlatformConfig `yaml:"platform" json:"platform"`
	Theme    ThemeConfig     `yaml:"theme" json:"theme"`

	Watch struct {
		Enable   bool     `yaml:"enable" json:"enable"`
		Debounce Duration `yaml:"debounce" json:"debounce"`
	} `yaml:"watch" json:"watch"`

	Metrics string `yaml:"metrics" json:"metrics"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// Duration accepts Go duration strings ("250ms") in YAML and JSON.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.parse(n.Value)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			fc = FileConfig{}
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into cfg for fields that are unset
// or still at their flag default, so explicit flags keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if len(cfg.Inputs) == 0 && len(fc.Inputs) > 0 {
		cfg.Inputs = append([]string{}, fc.Inputs...)
	}
	if (cfg.OutputDir == "" || cfg.OutputDir == outputDirDefault) && fc.Output.Dir != "" {
		cfg.OutputDir = fc.Output.Dir
	}
	if (cfg.Format == "" || cfg.Format == formatDefault) && fc.Output.Format != "" {
		cfg.Format = fc.Output.Format
	}
	if (cfg.Width == 0 || cfg.Width == widthDefault) && fc.Output.Width > 0 {
		cfg.Width = fc.Output.Width
	}
	if !cfg.Manifest && fc.Output.Manifest {
		cfg.Manifest = true
	}
	if fc.Platform != nil {
		if !cfg.Platform.Grid && fc.Platform.Grid {
			cfg.Platform.Grid = true
		}
		if !cfg.Platform.NativeAttributes && fc.Platform.NativeAttributes {
			cfg.Platform.NativeAttributes = true
		}
	}
	mergeTheme(&cfg.Theme, fc.Theme)

	if !cfg.Watch && fc.Watch.Enable {
		cfg.Watch = true
	}
	if (cfg.WatchDebounce == 0 || cfg.WatchDebounce == watchDebounceDefault) && fc.Watch.Debounce > 0 {
		cfg.WatchDebounce = time.Duration(fc.Watch.Debounce)
	}
	if cfg.MetricsPath == "" && fc.Metrics != "" {
		cfg.MetricsPath = fc.Metrics
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

func mergeTheme(dst *ThemeConfig, src ThemeConfig) {
	if len(dst.HeadingScale) == 0 && len(src.HeadingScale) > 0 {
		dst.HeadingScale = append([]float64{}, src.HeadingScale...)
	}
	if dst.LinkColor == "" {
		dst.LinkColor = src.LinkColor
	}
	if dst.QuoteColor == "" {
		dst.QuoteColor = src.QuoteColor
	}
	if dst.CodeBackground == "" {
		dst.CodeBackground = src.CodeBackground
	}
	if dst.BlockSpacing == nil && src.BlockSpacing != nil {
		v := *src.BlockSpacing
		dst.BlockSpacing = &v
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("config: at least one input is required: %w", ErrNoInput)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return errors.New("config: output directory is required")
	}
	switch cfg.Format {
	case FormatText, FormatPDF, FormatBoth:
	default:
		return fmt.Errorf("config: unknown format %q (want text, pdf or both)", cfg.Format)
	}
	if cfg.OutputDir == "-" && cfg.Format != FormatText {
		return errors.New("config: stdout output supports only the text format")
	}
	if cfg.Width < 0 {
		return errors.New("config: negative width is not allowed")
	}
	if cfg.WatchDebounce < 0 {
		return errors.New("config: negative watch debounce is not allowed")
	}
	if _, err := buildTheme(cfg.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
