package legend

// Option names recognized by the overlay and the fragment generator.
const (
	// OptMode selects the display mode: ModeAlways, ModeFollow or ModeNever.
	OptMode = "legendMode"
	// OptContainerWidth is the container width in pixels.
	OptContainerWidth = "containerWidth"
	// OptShowZeroValues keeps legend lines for points whose value is
	// exactly zero. Defaults to true; set false to suppress them.
	OptShowZeroValues = "showZeroValues"
	// OptContainer supplies a host-owned Surface to render into instead of
	// letting the overlay create its own.
	OptContainer = "container"
	// OptContainerStyles is a map[string]string of style properties merged
	// over the generated container's defaults.
	OptContainerStyles = "containerStyles"
	// OptSeparateLines puts every legend entry on its own line.
	OptSeparateLines = "separateLines"
	// OptFormatter holds a Formatter that replaces the built-in markup.
	OptFormatter = "formatter"
	// OptFollowOffsetX and OptFollowOffsetY shift the container away from
	// the selected point in follow mode, in pixels.
	OptFollowOffsetX = "followOffsetX"
	OptFollowOffsetY = "followOffsetY"
)

// Display modes for OptMode.
const (
	ModeAlways = "always"
	ModeFollow = "follow"
	ModeNever  = "never"
)

const (
	defaultContainerWidth = 250
	defaultFollowOffsetX  = 50
	defaultFollowOffsetY  = -25
)

func optString(h Host, name, def string) string {
	if v, ok := h.Option(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func optBool(h Host, name string, def bool) bool {
	if v, ok := h.Option(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// optInt tolerates float64 values so options decoded from JSON or YAML work
// without casting at the call site.
func optInt(h Host, name string, def int) int {
	v, ok := h.Option(name)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return def
}

func optIntForAxis(h Host, name, axis string, def int) int {
	v, ok := h.OptionForAxis(name, axis)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return def
}

func optFormatter(h Host) Formatter {
	if v, ok := h.Option(OptFormatter); ok {
		if f, ok := v.(Formatter); ok {
			return f
		}
	}
	return nil
}
