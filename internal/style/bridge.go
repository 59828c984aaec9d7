package style

// TextStyle changes text attributes. Styles are written against the
// compatible representation so they work on every platform tier.
type TextStyle interface {
	Collect(attrs *Compat)
}

// NativeTextStyle is implemented by styles that also know how to write the
// native representation directly.
type NativeTextStyle interface {
	TextStyle
	CollectNative(attrs *Native)
}

// Bridge applies s to a snapshot of native. The overlapping fields are copied
// into a Compat value, s runs on it, and every field set afterwards is
// copied into a fresh Native. Fields left unset by the compat value keep
// their native value; native-only fields pass through unchanged.
func Bridge(native Native, s TextStyle) Native {
	compat := CompatFrom(native)
	if s != nil {
		s.Collect(&compat)
	}
	out := native.Clone()
	mergeCompat(&out, compat)
	return out
}

// Apply uses the style's native path when it has one and falls back to
// Bridge otherwise.
func Apply(native Native, s TextStyle) Native {
	if ns, ok := s.(NativeTextStyle); ok {
		out := native.Clone()
		ns.CollectNative(&out)
		return out
	}
	return Bridge(native, s)
}

// CompatFrom snapshots the fields of n that Compat can represent.
func CompatFrom(n Native) Compat {
	c := Compat{
		ForegroundColor: clonePtr(n.ForegroundColor),
		BackgroundColor: clonePtr(n.BackgroundColor),
		Kern:            clonePtr(n.Kern),
		BaselineOffset:  clonePtr(n.BaselineOffset),
		Link:            clonePtr(n.Link),
		Tracking:        clonePtr(n.Tracking),
		FontProperties:  clonePtr(n.FontProperties),
	}
	if n.UnderlineStyle != nil {
		c.UnderlineStyle = Ptr(n.UnderlineStyle.Mask())
	}
	if n.StrikethroughStyle != nil {
		c.StrikethroughStyle = Ptr(n.StrikethroughStyle.Mask())
	}
	return c
}

// FromCompat builds a Native holding only what c sets.
func FromCompat(c Compat) Native {
	var n Native
	mergeCompat(&n, c)
	return n
}

func mergeCompat(dst *Native, c Compat) {
	if c.FontProperties != nil {
		dst.FontProperties = clonePtr(c.FontProperties)
	}
	if c.ForegroundColor != nil {
		dst.ForegroundColor = clonePtr(c.ForegroundColor)
	}
	if c.BackgroundColor != nil {
		dst.BackgroundColor = clonePtr(c.BackgroundColor)
	}
	if c.UnderlineStyle != nil {
		dst.UnderlineStyle = Ptr(c.UnderlineStyle.LineStyle())
	}
	if c.StrikethroughStyle != nil {
		dst.StrikethroughStyle = Ptr(c.StrikethroughStyle.LineStyle())
	}
	if c.Kern != nil {
		dst.Kern = clonePtr(c.Kern)
	}
	if c.BaselineOffset != nil {
		dst.BaselineOffset = clonePtr(c.BaselineOffset)
	}
	if c.Link != nil {
		dst.Link = clonePtr(c.Link)
	}
	if c.Tracking != nil {
		dst.Tracking = clonePtr(c.Tracking)
	}
}
