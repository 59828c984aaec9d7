package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullNative() Native {
	return Native{
		ForegroundColor:    RGB(10, 20, 30),
		BackgroundColor:    RGB(200, 200, 200),
		Kern:               Ptr(0.5),
		BaselineOffset:     Ptr(-2.0),
		Link:               Ptr("https://example.com"),
		Tracking:           Ptr(1.25),
		UnderlineStyle:     &LineStyle{Pattern: PatternDashDot, Weight: LineDouble},
		StrikethroughStyle: &LineStyle{Pattern: PatternSolid, Weight: LineThick},
		FontProperties:     &FontProperties{Family: "Inter", FamilyVariant: FamilyMonospaced, Weight: WeightBold, Slant: SlantItalic, Size: 13, Scale: 1.5},
		LanguageIdentifier: Ptr("ko"),
		AccessibilityLabel: Ptr("label"),
	}
}

func TestBridge_NoOpRoundTripIsExact(t *testing.T) {
	in := fullNative()
	assert.Equal(t, in, Bridge(in, NoStyle{}))
	assert.Equal(t, in, Bridge(in, nil))
	assert.Equal(t, in, Bridge(in, Styles{}))
}

func TestBridge_EmptyNativeStaysEmpty(t *testing.T) {
	assert.Equal(t, Native{}, Bridge(Native{}, NoStyle{}))
}

func TestBridge_UnsetCompatFieldsLeaveNativeUntouched(t *testing.T) {
	in := Native{Kern: Ptr(3.0), LanguageIdentifier: Ptr("fi")}
	out := Bridge(in, ForegroundColor{Color: RGB(1, 2, 3)})
	assert.Equal(t, RGB(1, 2, 3), out.ForegroundColor)
	assert.Equal(t, Ptr(3.0), out.Kern)
	assert.Equal(t, Ptr("fi"), out.LanguageIdentifier)
	assert.Nil(t, out.BackgroundColor)
}

func TestBridge_NilColorLeavesAttributeUnchanged(t *testing.T) {
	in := fullNative()
	out := Bridge(in, Styles{ForegroundColor{}, BackgroundColor{}})
	assert.Equal(t, in, out)
}

func TestBridge_DoesNotAliasInput(t *testing.T) {
	in := fullNative()
	out := Bridge(in, FontSize{Size: 2, Relative: true})
	require.NotNil(t, out.FontProperties)
	assert.Equal(t, 26.0, out.FontProperties.Size)
	assert.Equal(t, 13.0, in.FontProperties.Size)

	out.ForegroundColor.R = 99
	*out.Kern = 42
	assert.Equal(t, uint8(10), in.ForegroundColor.R)
	assert.Equal(t, 0.5, *in.Kern)
}

func TestBridge_StylesApplyInOrder(t *testing.T) {
	out := Bridge(Native{}, Styles{
		FontSize{Size: 20},
		FontWeightStyle{Weight: WeightSemibold},
		FontSize{Size: 0.5, Relative: true},
		FontFamilyVariantStyle{Variant: FamilyMonospaced},
		Italic{},
		Underline{Style: LineStyle{Pattern: PatternDot}},
		Strikethrough{},
		Kerning(1),
		Tracking(2),
		BaselineOffset(3),
		Link{URL: "https://go.dev"},
	})
	require.NotNil(t, out.FontProperties)
	assert.Equal(t, FontProperties{FamilyVariant: FamilyMonospaced, Weight: WeightSemibold, Slant: SlantItalic, Size: 10, Scale: 1}, *out.FontProperties)
	assert.Equal(t, &LineStyle{Pattern: PatternDot, Weight: LineSingle}, out.UnderlineStyle)
	assert.Equal(t, &LineStyle{}, out.StrikethroughStyle)
	assert.Equal(t, Ptr(1.0), out.Kern)
	assert.Equal(t, Ptr(2.0), out.Tracking)
	assert.Equal(t, Ptr(3.0), out.BaselineOffset)
	assert.Equal(t, Ptr("https://go.dev"), out.Link)
}

func TestApply_UsesNativePathWhenAvailable(t *testing.T) {
	out := Apply(Native{}, Language{Tag: "ja"})
	assert.Equal(t, Ptr("ja"), out.LanguageIdentifier)

	// through the bridge the language is not representable
	bridged := Bridge(Native{}, Language{Tag: "ja"})
	assert.Nil(t, bridged.LanguageIdentifier)
}

func TestFromCompat(t *testing.T) {
	c := Compat{Link: Ptr("x"), UnderlineStyle: Ptr(MaskThick | MaskPatternDash)}
	n := FromCompat(c)
	assert.Equal(t, Ptr("x"), n.Link)
	assert.Equal(t, &LineStyle{Pattern: PatternDash, Weight: LineThick}, n.UnderlineStyle)
	assert.Nil(t, n.FontProperties)
}

func TestLineStyleMaskRoundTrip(t *testing.T) {
	patterns := []LinePattern{PatternSolid, PatternDot, PatternDash, PatternDashDot, PatternDashDotDot}
	weights := []LineWeight{LineSingle, LineThick, LineDouble}
	for _, p := range patterns {
		for _, w := range weights {
			ls := LineStyle{Pattern: p, Weight: w}
			assert.Equal(t, ls, ls.Mask().LineStyle())
		}
	}
}

func TestFontProperties_ScaledSize(t *testing.T) {
	assert.Equal(t, 17.0, DefaultFont().ScaledSize())
	assert.Equal(t, 20.0, FontProperties{Size: 10, Scale: 2}.ScaledSize())
	assert.Equal(t, 10.0, FontProperties{Size: 10}.ScaledSize())
}
