package app

import (
	"path/filepath"
	"strings"
)

// deriveOutputPath maps an input file to its rendered file under outDir.
// The input's path relative to base is mirrored so same-named files in
// different directories do not collide; inputs outside base fall back to
// their file name.
func deriveOutputPath(outDir, base, input, ext string) string {
	rel, err := filepath.Rel(base, input)
	if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		rel = filepath.Base(input)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ext
	return filepath.Join(outDir, rel)
}

// deriveManifestSidecarPath returns a sidecar JSON path next to the output.
func deriveManifestSidecarPath(outputPath string) string {
	return outputPath + ".manifest.json"
}

// globBase returns the static directory prefix of a doublestar pattern.
func globBase(pattern string) string {
	pattern = filepath.ToSlash(pattern)
	i := strings.IndexAny(pattern, "*?[{")
	if i < 0 {
		return filepath.Dir(filepath.FromSlash(pattern))
	}
	dir := pattern[:i]
	if j := strings.LastIndexByte(dir, '/'); j >= 0 {
		dir = dir[:j]
	} else {
		dir = "."
	}
	if dir == "" {
		dir = "/"
	}
	return filepath.FromSlash(dir)
}
