package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnvToConfig and ApplyEnvOverrides.
const (
	envInputs        = "MDRENDER_INPUTS"
	envOutputDir     = "MDRENDER_OUT"
	envFormat        = "MDRENDER_FORMAT"
	envWidth         = "MDRENDER_WIDTH"
	envGrid          = "MDRENDER_GRID"
	envNativeAttrs   = "MDRENDER_NATIVE_ATTRS"
	envWatch         = "MDRENDER_WATCH"
	envWatchDebounce = "MDRENDER_WATCH_DEBOUNCE"
	envMetrics       = "MDRENDER_METRICS"
	envManifest      = "MDRENDER_MANIFEST"
	envVerbose       = "MDRENDER_VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = splitList(os.Getenv(envInputs))
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = strings.TrimSpace(os.Getenv(envOutputDir))
	}
	if cfg.Format == "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(os.Getenv(envFormat)))
	}
	if cfg.Width == 0 {
		if n, ok := envInt(envWidth); ok {
			cfg.Width = n
		}
	}
	if cfg.WatchDebounce == 0 {
		if d, ok := envDuration(envWatchDebounce); ok {
			cfg.WatchDebounce = d
		}
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = strings.TrimSpace(os.Getenv(envMetrics))
	}

	// Booleans only switch on
	setBool := func(dst *bool, key string) {
		if *dst {
			return
		}
		if v, ok := envBool(key); ok && v {
			*dst = true
		}
	}
	setBool(&cfg.Platform.Grid, envGrid)
	setBool(&cfg.Platform.NativeAttributes, envNativeAttrs)
	setBool(&cfg.Watch, envWatch)
	setBool(&cfg.Manifest, envManifest)
	setBool(&cfg.Verbose, envVerbose)
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// that are set. Env takes precedence over the config file; flags are applied
// afterwards by the caller and stay highest.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := splitList(os.Getenv(envInputs)); len(v) > 0 {
		cfg.Inputs = v
	}
	if v := strings.TrimSpace(os.Getenv(envOutputDir)); v != "" {
		cfg.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(envFormat)); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if n, ok := envInt(envWidth); ok {
		cfg.Width = n
	}
	if d, ok := envDuration(envWatchDebounce); ok {
		cfg.WatchDebounce = d
	}
	if v := strings.TrimSpace(os.Getenv(envMetrics)); v != "" {
		cfg.MetricsPath = v
	}

	// Booleans override when env present and truthy/falsey
	setBool := func(dst *bool, key string) {
		if v, ok := envBool(key); ok {
			*dst = v
		}
	}
	setBool(&cfg.Platform.Grid, envGrid)
	setBool(&cfg.Platform.NativeAttributes, envNativeAttrs)
	setBool(&cfg.Watch, envWatch)
	setBool(&cfg.Manifest, envManifest)
	setBool(&cfg.Verbose, envVerbose)
}

func envBool(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func envInt(key string) (int, bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func envDuration(key string) (time.Duration, bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
