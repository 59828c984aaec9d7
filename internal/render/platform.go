package render

// Platform reports which optional rendering features the host supports.
// It is injected once; the renderer never probes the host itself.
type Platform interface {
	// SupportsGrid reports whether a native grid layout primitive exists.
	SupportsGrid() bool
	// SupportsNativeAttributes reports whether the rich attribute set can be
	// written directly.
	SupportsNativeAttributes() bool
}

// StaticPlatform is a Platform with fixed answers, typically filled from
// configuration.
type StaticPlatform struct {
	Grid             bool
	NativeAttributes bool
}

func (p StaticPlatform) SupportsGrid() bool             { return p.Grid }
func (p StaticPlatform) SupportsNativeAttributes() bool { return p.NativeAttributes }

// PlatformFunc adapts two predicates to Platform.
type PlatformFunc struct {
	Grid             func() bool
	NativeAttributes func() bool
}

func (p PlatformFunc) SupportsGrid() bool {
	return p.Grid != nil && p.Grid()
}

func (p PlatformFunc) SupportsNativeAttributes() bool {
	return p.NativeAttributes != nil && p.NativeAttributes()
}
