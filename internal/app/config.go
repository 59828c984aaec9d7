package app

import "time"

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatPDF  = "pdf"
	FormatBoth = "both"
)

// Config holds runtime configuration for the application.
type Config struct {
	// Inputs are file paths or doublestar glob patterns.
	Inputs []string
	// OutputDir receives one rendered file per input; "-" writes text to
	// the app's stdout instead.
	OutputDir string
	Format    string
	Width     int

	Platform PlatformConfig
	Theme    ThemeConfig

	// Behavior
	Watch         bool
	WatchDebounce time.Duration
	MetricsPath   string
	Manifest      bool
	Verbose       bool
}

// PlatformConfig selects the rendering strategies.
type PlatformConfig struct {
	Grid             bool `yaml:"grid" json:"grid"`
	NativeAttributes bool `yaml:"nativeAttributes" json:"nativeAttributes"`
}

// ThemeConfig overrides parts of the default theme. Zero values keep the
// default.
type ThemeConfig struct {
	// HeadingScale holds relative font sizes for h1..h6.
	HeadingScale   []float64 `yaml:"headingScale" json:"headingScale"`
	LinkColor      string    `yaml:"linkColor" json:"linkColor"`
	QuoteColor     string    `yaml:"quoteColor" json:"quoteColor"`
	CodeBackground string    `yaml:"codeBackground" json:"codeBackground"`
	BlockSpacing   *int      `yaml:"blockSpacing" json:"blockSpacing"`
}

// Defaults used by the CLI flags; ApplyFileConfig treats these as unset.
const (
	outputDirDefault     = "out"
	formatDefault        = FormatText
	widthDefault         = 80
	watchDebounceDefault = 200 * time.Millisecond
)

// DefaultConfig returns the configuration the CLI starts from.
func DefaultConfig() Config {
	return Config{
		OutputDir:     outputDirDefault,
		Format:        formatDefault,
		Width:         widthDefault,
		WatchDebounce: watchDebounceDefault,
	}
}
