// Package mapview owns the interactive map state for granule exploration:
// the drawn search region, the per-collection result layers and the hover
// info panel. It models the surface explicitly so handlers can run
// synchronously in tests, without a live widget.
package mapview

import (
	"github.com/venicegeo/geojson-go/geojson"
)

// Control is a named widget attached to the map surface
type Control string

// Controls attached to a freshly built surface
const (
	ZoomControl       Control = "zoom"
	LayersControl     Control = "layers"
	FullScreenControl Control = "fullscreen"
	MeasureControl    Control = "measure"
	DrawControl       Control = "draw"
)

// LayerStyle is the styling applied to a rendered layer
type LayerStyle struct {
	Color       string
	FillColor   string
	Opacity     float64
	Weight      float64
	FillOpacity float64
}

// Layer is one rendered group of granule footprints, one per dataset id
type Layer struct {
	Name         string
	DatasetID    string
	Color        string
	GranuleCount int
	TotalSizeGB  float64
	Features     *geojson.FeatureCollection
	Style        LayerStyle
	HoverStyle   LayerStyle

	onHover func(*geojson.Feature)
}

// OnHover registers the handler invoked when a feature of the layer is
// hovered
func (l *Layer) OnHover(handler func(*geojson.Feature)) {
	l.onHover = handler
}

// Hover dispatches a hover event for one feature of the layer
func (l *Layer) Hover(feature *geojson.Feature) {
	if l.onHover != nil {
		l.onHover(feature)
	}
}

// RegionOverlay is the highlighted rendering of the currently drawn search
// region
type RegionOverlay struct {
	Name  string
	Shape interface{}
	Style LayerStyle
}

// InfoPanel is the hover detail control shown in a corner of the map
type InfoPanel struct {
	Title        string
	SizeMB       float64
	Start        string
	End          string
	DataLinks    []string
	BrowseImages []string
	Position     string
}

// Surface is the map being presented: its projection preset plus the
// mutable set of controls, layers and overlays
type Surface struct {
	Preset   Preset
	Controls []Control

	layers        []*Layer
	regionOverlay *RegionOverlay
	infoPanel     *InfoPanel
}

// NewSurface creates a fresh surface for the given preset
func NewSurface(preset Preset) *Surface {
	return &Surface{Preset: preset}
}

// AddControl attaches a control to the surface
func (s *Surface) AddControl(control Control) {
	s.Controls = append(s.Controls, control)
}

// ClearControls detaches every control, for reusing a caller-supplied surface
func (s *Surface) ClearControls() {
	s.Controls = nil
}

// HasControl reports whether a control is currently attached
func (s *Surface) HasControl(control Control) bool {
	for _, c := range s.Controls {
		if c == control {
			return true
		}
	}
	return false
}

// AddLayer attaches a result layer to the surface
func (s *Surface) AddLayer(layer *Layer) {
	s.layers = append(s.layers, layer)
}

// RemoveLayer detaches a result layer from the surface
func (s *Surface) RemoveLayer(layer *Layer) {
	for i, l := range s.layers {
		if l == layer {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the currently attached result layers
func (s *Surface) Layers() []*Layer {
	return s.layers
}

// SetRegionOverlay replaces the drawn-region overlay
func (s *Surface) SetRegionOverlay(overlay *RegionOverlay) {
	s.regionOverlay = overlay
}

// RegionOverlay returns the current drawn-region overlay, or nil
func (s *Surface) RegionOverlay() *RegionOverlay {
	return s.regionOverlay
}

// ClearRegionOverlay removes the drawn-region overlay
func (s *Surface) ClearRegionOverlay() {
	s.regionOverlay = nil
}

// SetInfoPanel replaces the hover info panel control
func (s *Surface) SetInfoPanel(panel *InfoPanel) {
	s.infoPanel = panel
}

// InfoPanel returns the current hover info panel, or nil
func (s *Surface) InfoPanel() *InfoPanel {
	return s.infoPanel
}
