package main

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"hoverlegend/legend"
)

// Service exposes the legend renderers over HTTP.
type Service struct {
	cfg Config
}

// NewService creates a new Service with the given configuration.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Run starts the Echo server and registers routes.
func (s *Service) Run(addr string) error {
	e := echo.New()

	// render one dash swatch
	e.POST("/swatch", s.handleSwatch)
	// render a full legend fragment
	e.POST("/fragment", s.handleFragment)
	// default series palette
	e.GET("/palette", s.handlePalette)

	return e.Start(addr)
}

// options settable per request; container and formatter options only make
// sense in-process and are rejected here
var requestOptions = map[string]bool{
	legend.OptMode:           true,
	legend.OptContainerWidth: true,
	legend.OptShowZeroValues: true,
	legend.OptSeparateLines:  true,
	legend.OptFollowOffsetX:  true,
	legend.OptFollowOffsetY:  true,
}

// --- Handlers ---

type SwatchRequest struct {
	Pattern  []float64 `json:"pattern"`
	Color    string    `json:"color"`
	BudgetEm float64   `json:"budgetEm"`
}

func (s *Service) handleSwatch(c echo.Context) error {
	var req SwatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	for _, v := range req.Pattern {
		if v < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "pattern entries must be >= 0"})
		}
	}
	if req.Color == "" {
		req.Color = legend.PickColor(nil, 0)
	}
	if req.BudgetEm <= 0 {
		req.BudgetEm = 1
	}
	return c.JSON(http.StatusOK, map[string]string{
		"html": legend.Swatch(req.Pattern, req.Color, req.BudgetEm),
	})
}

type FragmentSeries struct {
	Name          string    `json:"name"`
	Color         string    `json:"color,omitempty"`
	StrokePattern []float64 `json:"strokePattern,omitempty"`
	Visible       *bool     `json:"visible,omitempty"`
	Axis          string    `json:"axis,omitempty"`
}

type FragmentPoint struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	YVal    float64 `json:"yval"`
	CanvasY float64 `json:"canvasy"`
}

type FragmentSelection struct {
	X      float64         `json:"x"`
	Row    int             `json:"row"`
	Points []FragmentPoint `json:"points"`
}

type FragmentRequest struct {
	Series    []FragmentSeries   `json:"series"`
	Selection *FragmentSelection `json:"selection,omitempty"`
	Highlight string             `json:"highlight,omitempty"`
	Options   map[string]any     `json:"options,omitempty"`
	BudgetEm  float64            `json:"budgetEm"`
}

func (s *Service) handleFragment(c echo.Context) error {
	var req FragmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if len(req.Series) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "series must contain at least one item"})
	}

	budget := req.BudgetEm
	if budget <= 0 {
		budget = 1
	}

	var sel *legend.SelectEvent
	if req.Selection != nil {
		points := make([]legend.Point, len(req.Selection.Points))
		for i, p := range req.Selection.Points {
			points[i] = legend.Point{
				Name:    p.Name,
				X:       p.X,
				Y:       p.Y,
				YVal:    p.YVal,
				CanvasY: p.CanvasY,
			}
		}
		sel = &legend.SelectEvent{X: req.Selection.X, Points: points, Row: req.Selection.Row}
	}

	html := legend.GenerateHTML(s.hostFor(req), sel, budget)
	return c.JSON(http.StatusOK, map[string]string{"html": html})
}

func (s *Service) handlePalette(c echo.Context) error {
	colors := make([]string, 12)
	for i := range colors {
		colors[i] = legend.PickColor(nil, i)
	}
	return c.JSON(http.StatusOK, map[string][]string{"colors": colors})
}

// hostFor assembles a static host from the request, layering request options
// over the configured defaults. Unknown option names are skipped with a
// warning.
func (s *Service) hostFor(req FragmentRequest) *legend.StaticHost {
	opts := s.cfg.LegendOptions()
	for name, value := range req.Options {
		if !requestOptions[name] {
			slog.Warn("skipping unknown legend option", "option", name)
			continue
		}
		opts[name] = value
	}

	series := make([]legend.SeriesInfo, len(req.Series))
	for i, sr := range req.Series {
		visible := true
		if sr.Visible != nil {
			visible = *sr.Visible
		}
		series[i] = legend.SeriesInfo{
			Name:          sr.Name,
			Color:         sr.Color,
			StrokePattern: sr.StrokePattern,
			Visible:       visible,
			Axis:          sr.Axis,
		}
	}

	return &legend.StaticHost{
		Opts:       opts,
		SeriesList: series,
		Highlight:  req.Highlight,
	}
}
