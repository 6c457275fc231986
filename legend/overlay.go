package legend

import (
	"log/slog"
	"strconv"
)

// Overlay positions a legend surface over one chart and fills it with the
// markup for the current selection. One overlay serves exactly one chart;
// construct a new one per chart instead of sharing.
type Overlay struct {
	host    Host
	surface Surface
	// owned is true when the overlay created the surface itself rather than
	// adopting one from the container option.
	owned   bool
	factory func() Surface

	// emWidth is the cached render budget for dash swatches. It starts as a
	// guess and is refreshed from the surface on every deselect; selects on
	// the hot path never measure.
	emWidth float64
}

// Callbacks are the lifecycle handlers an overlay registers with its host.
// The host must deliver events for one chart serially.
type Callbacks struct {
	Select       func(SelectEvent)
	Deselect     func(DeselectEvent)
	Predraw      func(PredrawEvent)
	PostTeardown func()
}

// New returns an overlay that builds its own MemorySurface unless the host
// supplies a surface through the container option.
func New() *Overlay {
	return NewWithFactory(func() Surface { return NewMemorySurface() })
}

// NewWithFactory returns an overlay that calls factory when it has to create
// its own surface.
func NewWithFactory(factory func() Surface) *Overlay {
	return &Overlay{factory: factory}
}

// Activate binds the overlay to a host and returns its lifecycle callbacks.
// A surface supplied via the container option is adopted as-is; otherwise
// the overlay creates one and styles it from the defaults merged with the
// containerStyles option.
func (o *Overlay) Activate(host Host) Callbacks {
	o.host = host
	if v, ok := host.Option(OptContainer); ok {
		if s, ok := v.(Surface); ok && s != nil {
			o.surface = s
			o.owned = false
		}
	}
	if o.surface == nil {
		o.surface = o.factory()
		o.owned = true
		o.applyContainerStyles()
	}
	// Measuring text before the first layout is meaningless; start from a
	// guess and let the first deselect correct it.
	o.emWidth = 10

	return Callbacks{
		Select:       o.handleSelect,
		Deselect:     o.handleDeselect,
		Predraw:      o.handlePredraw,
		PostTeardown: o.release,
	}
}

func (o *Overlay) applyContainerStyles() {
	area := o.host.PlotArea()
	width := optInt(o.host, OptContainerWidth, defaultContainerWidth)
	styles := map[string]string{
		"position":   "absolute",
		"fontSize":   "14px",
		"zIndex":     "10",
		"width":      strconv.Itoa(width) + "px",
		"top":        strconv.Itoa(area.Y) + "px",
		"left":       strconv.Itoa(area.X+area.W-width-1) + "px",
		"background": "white",
		"lineHeight": "normal",
		"textAlign":  "left",
		"overflow":   "hidden",
	}
	if v, ok := o.host.Option(OptContainerStyles); ok {
		if extra, ok := v.(map[string]string); ok {
			for name, value := range extra {
				styles[name] = value
			}
		}
	}
	for name, value := range styles {
		if err := o.surface.SetStyle(name, value); err != nil {
			slog.Warn("skipping container style", "property", name, "error", err)
		}
	}
}

func (o *Overlay) handleSelect(e SelectEvent) {
	if o.surface == nil {
		return
	}
	mode := optString(o.host, OptMode, ModeAlways)
	if mode == ModeNever {
		o.surface.SetVisible(false)
		return
	}
	if mode == ModeFollow && len(e.Points) > 0 {
		o.follow(e.Points[0])
	}
	o.surface.SetContent(GenerateHTML(o.host, &e, o.emWidth))
	o.surface.SetVisible(true)
}

// follow places the surface next to the selected point, flipping to the
// other side when it would spill past the plot area's right edge.
func (o *Overlay) follow(p Point) {
	area := o.host.PlotArea()
	width := optInt(o.host, OptContainerWidth, defaultContainerWidth)
	offX := optInt(o.host, OptFollowOffsetX, defaultFollowOffsetX)
	offY := optInt(o.host, OptFollowOffsetY, defaultFollowOffsetY)
	yAxisWidth := optIntForAxis(o.host, "axisLabelWidth", "y", 50)

	left := int(p.X*float64(area.W)) + offX
	top := int(p.Y*float64(area.H)) + offY
	if left+width+1 > area.W {
		left = left - 2*offX - width - (yAxisWidth - area.X)
	}
	o.surface.SetPosition(yAxisWidth+left, top)
}

func (o *Overlay) handleDeselect(DeselectEvent) {
	if o.surface == nil {
		return
	}
	// The one place the render budget is recomputed.
	o.emWidth = o.surface.EmWidth()
	if optString(o.host, OptMode, ModeAlways) != ModeAlways {
		o.surface.SetVisible(false)
	}
	o.surface.SetContent(GenerateHTML(o.host, nil, o.emWidth))
}

func (o *Overlay) handlePredraw(PredrawEvent) {
	if o.surface == nil || !o.owned {
		return
	}
	area := o.host.PlotArea()
	width := optInt(o.host, OptContainerWidth, defaultContainerWidth)
	o.surface.SetPosition(area.X+area.W-width-1, area.Y)
}

// release drops the surface and host references. A self-created surface is
// hidden first; an adopted one is left exactly as the host handed it over.
func (o *Overlay) release() {
	if o.surface == nil {
		return
	}
	if o.owned {
		o.surface.SetVisible(false)
	}
	o.surface = nil
	o.host = nil
}
