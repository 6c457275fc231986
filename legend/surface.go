package legend

import "fmt"

// Surface is the rendering target an Overlay draws into. Exactly one overlay
// owns a surface at a time; the overlay never hands the reference out.
type Surface interface {
	SetVisible(visible bool)
	// SetPosition moves the surface to (left, top) pixels relative to the
	// chart's top-left corner.
	SetPosition(left, top int)
	// SetContent replaces the surface's inner HTML.
	SetContent(html string)
	// SetStyle applies one style property. Unsupported properties return an
	// error; callers treat that as non-fatal.
	SetStyle(name, value string) error
	// EmWidth measures the rendered width of one "m" in the surface's
	// current text style. Callers should cache the result: measuring forces
	// a layout in DOM-backed implementations.
	EmWidth() float64
}

// memory surface style properties with a known meaning
var supportedStyles = map[string]bool{
	"position":   true,
	"fontSize":   true,
	"zIndex":     true,
	"width":      true,
	"top":        true,
	"left":       true,
	"background": true,
	"lineHeight": true,
	"textAlign":  true,
	"overflow":   true,
	"color":      true,
	"border":     true,
	"padding":    true,
	"opacity":    true,
}

// MemorySurface is an in-memory Surface for tests and server-side rendering.
// It records everything the overlay does to it.
type MemorySurface struct {
	Visible   bool
	Left, Top int
	Content   string
	Styles    map[string]string
	// Em is the value EmWidth reports.
	Em float64
}

// NewMemorySurface returns a hidden surface reporting an em width of 10px,
// matching a 14px default font closely enough for layout-free use.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		Styles: map[string]string{},
		Em:     10,
	}
}

func (s *MemorySurface) SetVisible(visible bool) { s.Visible = visible }

func (s *MemorySurface) SetPosition(left, top int) {
	s.Left, s.Top = left, top
}

func (s *MemorySurface) SetContent(html string) { s.Content = html }

func (s *MemorySurface) SetStyle(name, value string) error {
	if !supportedStyles[name] {
		return fmt.Errorf("unsupported style property %q", name)
	}
	s.Styles[name] = value
	return nil
}

func (s *MemorySurface) EmWidth() float64 { return s.Em }
