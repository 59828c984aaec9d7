package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/hyperifyio/mdrender/internal/htmlblock"
)

// manifestMeta captures the settings a rendered file was produced with.
type manifestMeta struct {
	Version          string    `json:"version"`
	Format           string    `json:"format"`
	Width            int       `json:"width"`
	Grid             bool      `json:"grid"`
	NativeAttributes bool      `json:"native_attributes"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// manifestInput identifies the exact source bytes that were rendered.
type manifestInput struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`
}

// fileStats counts what the renderer produced for one input. It is a
// render.Observer and is used from a single goroutine.
type fileStats struct {
	Blocks          map[string]int `json:"blocks"`
	HTMLFallbacks   map[string]int `json:"html_fallbacks,omitempty"`
	TableStrategies map[string]int `json:"table_strategies,omitempty"`
}

func newFileStats() *fileStats {
	return &fileStats{
		Blocks:          map[string]int{},
		HTMLFallbacks:   map[string]int{},
		TableStrategies: map[string]int{},
	}
}

func (s *fileStats) Block(kind string)                 { s.Blocks[kind]++ }
func (s *fileStats) HTMLFallback(c htmlblock.Category) { s.HTMLFallbacks[c.String()]++ }
func (s *fileStats) TableStrategy(name string)         { s.TableStrategies[name]++ }

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of b.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// marshalManifestJSON encodes the machine-readable sidecar manifest.
func marshalManifestJSON(meta manifestMeta, in manifestInput, stats *fileStats, outputs []string) ([]byte, error) {
	sorted := append([]string{}, outputs...)
	sort.Strings(sorted)
	payload := struct {
		Meta    manifestMeta  `json:"meta"`
		Input   manifestInput `json:"input"`
		Stats   *fileStats    `json:"stats"`
		Outputs []string      `json:"outputs"`
	}{Meta: meta, Input: in, Stats: stats, Outputs: sorted}
	return json.MarshalIndent(payload, "", "  ")
}
