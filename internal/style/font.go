package style

// FontFamilyVariant selects a family variant of the current font.
type FontFamilyVariant int

const (
	FamilyNormal FontFamilyVariant = iota
	FamilyMonospaced
)

type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

type FontSlant int

const (
	SlantNormal FontSlant = iota
	SlantItalic
)

// FontProperties describes the font of a text run independently of any
// platform font object.
type FontProperties struct {
	Family        string
	FamilyVariant FontFamilyVariant
	Weight        FontWeight
	Slant         FontSlant
	Size          float64
	Scale         float64
}

const defaultFontSize = 17

// DefaultFont is the body font used when nothing else is set.
func DefaultFont() FontProperties {
	return FontProperties{Size: defaultFontSize, Scale: 1}
}

// ScaledSize is Size multiplied by Scale.
func (f FontProperties) ScaledSize() float64 {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}
	return f.Size * scale
}
