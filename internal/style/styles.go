package style

import "image/color"

// Styles applies its members in order.
type Styles []TextStyle

func (s Styles) Collect(attrs *Compat) {
	for _, st := range s {
		if st != nil {
			st.Collect(attrs)
		}
	}
}

// NoStyle leaves attributes untouched.
type NoStyle struct{}

func (NoStyle) Collect(*Compat) {}

// ForegroundColor sets the text colour. A nil Color leaves it unchanged.
type ForegroundColor struct {
	Color *color.RGBA
}

func (s ForegroundColor) Collect(attrs *Compat) {
	if s.Color != nil {
		attrs.ForegroundColor = clonePtr(s.Color)
	}
}

// BackgroundColor sets the text background. A nil Color leaves it unchanged.
type BackgroundColor struct {
	Color *color.RGBA
}

func (s BackgroundColor) Collect(attrs *Compat) {
	if s.Color != nil {
		attrs.BackgroundColor = clonePtr(s.Color)
	}
}

func fontOf(attrs *Compat) FontProperties {
	if attrs.FontProperties == nil {
		return DefaultFont()
	}
	return *attrs.FontProperties
}

type FontWeightStyle struct {
	Weight FontWeight
}

func (s FontWeightStyle) Collect(attrs *Compat) {
	f := fontOf(attrs)
	f.Weight = s.Weight
	attrs.FontProperties = &f
}

// FontSize sets the font size in points, or relative to the current size
// when Relative is true (1 = unchanged).
type FontSize struct {
	Size     float64
	Relative bool
}

func (s FontSize) Collect(attrs *Compat) {
	f := fontOf(attrs)
	if s.Relative {
		f.Size *= s.Size
	} else {
		f.Size = s.Size
	}
	attrs.FontProperties = &f
}

type FontFamilyVariantStyle struct {
	Variant FontFamilyVariant
}

func (s FontFamilyVariantStyle) Collect(attrs *Compat) {
	f := fontOf(attrs)
	f.FamilyVariant = s.Variant
	attrs.FontProperties = &f
}

type Italic struct{}

func (Italic) Collect(attrs *Compat) {
	f := fontOf(attrs)
	f.Slant = SlantItalic
	attrs.FontProperties = &f
}

type Underline struct {
	Style LineStyle
}

func (s Underline) Collect(attrs *Compat) {
	attrs.UnderlineStyle = Ptr(s.Style.Mask())
}

type Strikethrough struct {
	Style LineStyle
}

func (s Strikethrough) Collect(attrs *Compat) {
	attrs.StrikethroughStyle = Ptr(s.Style.Mask())
}

type Kerning float64

func (k Kerning) Collect(attrs *Compat) {
	attrs.Kern = Ptr(float64(k))
}

type Tracking float64

func (t Tracking) Collect(attrs *Compat) {
	attrs.Tracking = Ptr(float64(t))
}

type BaselineOffset float64

func (b BaselineOffset) Collect(attrs *Compat) {
	attrs.BaselineOffset = Ptr(float64(b))
}

// Link marks text as a link to URL.
type Link struct {
	URL string
}

func (l Link) Collect(attrs *Compat) {
	attrs.Link = Ptr(l.URL)
}

// Language tags text with a BCP 47 language. Compat has no room for it, so
// it only takes effect on the native path.
type Language struct {
	Tag string
}

func (Language) Collect(*Compat) {}

func (l Language) CollectNative(attrs *Native) {
	attrs.LanguageIdentifier = Ptr(l.Tag)
}

// RGB builds an opaque colour pointer.
func RGB(r, g, b uint8) *color.RGBA {
	return &color.RGBA{R: r, G: g, B: b, A: 0xff}
}
