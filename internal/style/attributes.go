package style

import "image/color"

// LinePattern is the dash pattern of an underline or strikethrough.
type LinePattern int

const (
	PatternSolid LinePattern = iota
	PatternDot
	PatternDash
	PatternDashDot
	PatternDashDotDot
)

// LineWeight is the stroke of an underline or strikethrough.
type LineWeight int

const (
	LineSingle LineWeight = iota
	LineThick
	LineDouble
)

// LineStyle is the native line decoration value.
type LineStyle struct {
	Pattern LinePattern
	Weight  LineWeight
}

// LineMask is the compatible encoding of a line decoration: the low byte
// holds the weight, the second byte the pattern.
type LineMask int

const (
	MaskSingle LineMask = 0x01
	MaskThick  LineMask = 0x02
	MaskDouble LineMask = 0x09

	MaskPatternDot        LineMask = 0x0100
	MaskPatternDash       LineMask = 0x0200
	MaskPatternDashDot    LineMask = 0x0300
	MaskPatternDashDotDot LineMask = 0x0400
)

// Mask encodes ls for the compatible representation.
func (ls LineStyle) Mask() LineMask {
	var m LineMask
	switch ls.Weight {
	case LineThick:
		m = MaskThick
	case LineDouble:
		m = MaskDouble
	default:
		m = MaskSingle
	}
	switch ls.Pattern {
	case PatternDot:
		m |= MaskPatternDot
	case PatternDash:
		m |= MaskPatternDash
	case PatternDashDot:
		m |= MaskPatternDashDot
	case PatternDashDotDot:
		m |= MaskPatternDashDotDot
	}
	return m
}

// LineStyle decodes m. Unknown bits fall back to a solid single line.
func (m LineMask) LineStyle() LineStyle {
	var ls LineStyle
	switch m & 0xff {
	case MaskThick:
		ls.Weight = LineThick
	case MaskDouble:
		ls.Weight = LineDouble
	default:
		ls.Weight = LineSingle
	}
	switch m & 0xff00 {
	case MaskPatternDot:
		ls.Pattern = PatternDot
	case MaskPatternDash:
		ls.Pattern = PatternDash
	case MaskPatternDashDot:
		ls.Pattern = PatternDashDot
	case MaskPatternDashDotDot:
		ls.Pattern = PatternDashDotDot
	}
	return ls
}

// Compat is the limited attribute set every platform tier supports. A nil
// field is unset.
type Compat struct {
	ForegroundColor    *color.RGBA
	BackgroundColor    *color.RGBA
	Kern               *float64
	BaselineOffset     *float64
	Link               *string
	Tracking           *float64
	UnderlineStyle     *LineMask
	StrikethroughStyle *LineMask
	FontProperties     *FontProperties
}

// Native is the richer attribute set of capable platforms. It carries every
// Compat field in native form plus fields Compat cannot express.
type Native struct {
	ForegroundColor    *color.RGBA
	BackgroundColor    *color.RGBA
	Kern               *float64
	BaselineOffset     *float64
	Link               *string
	Tracking           *float64
	UnderlineStyle     *LineStyle
	StrikethroughStyle *LineStyle
	FontProperties     *FontProperties

	LanguageIdentifier *string
	AccessibilityLabel *string
}

// Clone returns a copy of n that shares no pointers with it.
func (n Native) Clone() Native {
	return Native{
		ForegroundColor:    clonePtr(n.ForegroundColor),
		BackgroundColor:    clonePtr(n.BackgroundColor),
		Kern:               clonePtr(n.Kern),
		BaselineOffset:     clonePtr(n.BaselineOffset),
		Link:               clonePtr(n.Link),
		Tracking:           clonePtr(n.Tracking),
		UnderlineStyle:     clonePtr(n.UnderlineStyle),
		StrikethroughStyle: clonePtr(n.StrikethroughStyle),
		FontProperties:     clonePtr(n.FontProperties),
		LanguageIdentifier: clonePtr(n.LanguageIdentifier),
		AccessibilityLabel: clonePtr(n.AccessibilityLabel),
	}
}

// Font returns the font properties, or the defaults when unset.
func (n Native) Font() FontProperties {
	if n.FontProperties == nil {
		return DefaultFont()
	}
	return *n.FontProperties
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v, for filling optional attribute fields.
func Ptr[T any](v T) *T {
	return &v
}
