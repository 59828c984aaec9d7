package app

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hyperifyio/mdrender/internal/render"
	"github.com/hyperifyio/mdrender/internal/style"
)

// buildTheme applies tc on top of render.DefaultTheme.
func buildTheme(tc ThemeConfig) (render.Theme, error) {
	t := render.DefaultTheme()
	if len(tc.HeadingScale) > len(t.Headings) {
		return t, fmt.Errorf("theme: %d heading scales given, at most %d allowed", len(tc.HeadingScale), len(t.Headings))
	}
	for i, scale := range tc.HeadingScale {
		if scale <= 0 {
			return t, fmt.Errorf("theme: heading %d scale must be positive", i+1)
		}
		t.Headings[i] = style.Styles{
			style.FontWeightStyle{Weight: style.WeightSemibold},
			style.FontSize{Size: scale, Relative: true},
		}
	}
	if tc.LinkColor != "" {
		c, err := parseHexColor(tc.LinkColor)
		if err != nil {
			return t, fmt.Errorf("theme: link colour: %w", err)
		}
		t.Link = style.ForegroundColor{Color: c}
	}
	if tc.QuoteColor != "" {
		c, err := parseHexColor(tc.QuoteColor)
		if err != nil {
			return t, fmt.Errorf("theme: quote colour: %w", err)
		}
		t.Blockquote = style.ForegroundColor{Color: c}
	}
	if tc.CodeBackground != "" {
		c, err := parseHexColor(tc.CodeBackground)
		if err != nil {
			return t, fmt.Errorf("theme: code background: %w", err)
		}
		t.Code = style.Styles{t.Code, style.BackgroundColor{Color: c}}
	}
	if tc.BlockSpacing != nil {
		if *tc.BlockSpacing < 0 {
			return t, fmt.Errorf("theme: negative block spacing")
		}
		t.BlockSpacing = *tc.BlockSpacing
	}
	return t, nil
}

// parseHexColor accepts "#rgb" and "#rrggbb", with or without the hash.
func parseHexColor(s string) (*color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return style.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
