package mapview

import (
	"fmt"
	"math"
	"strings"

	"github.com/venicegeo/geojson-go/geojson"
	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/geometry"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/model"
	"github.com/earthdata-tools/granule-broker/table"
)

const regionOverlayName = "ROI"
const maxBrowseImages = 2

var regionStyle = LayerStyle{Color: "red", Opacity: 0.9, FillOpacity: 0.1}

var resultLayerStyle = LayerStyle{Opacity: 0.15, Weight: 0.04, FillOpacity: 0.1}

var resultHoverStyle = LayerStyle{FillColor: "red", FillOpacity: 0.6}

// Presenter owns the map state for a granule search session: the search
// parameters being built up, the drawn region and the rendered result layers
type Presenter struct {
	params  geometry.ParamSetter
	surface *Surface
	region  geometry.DrawnRegion

	activeLayers []*Layer
}

// NewPresenter builds a presenter over a fresh or caller-supplied surface.
// preset selects the basemap/projection/center configuration; a supplied
// surface is reused after its controls are cleared.
func NewPresenter(params geometry.ParamSetter, presetName string, surface *Surface) (*Presenter, error) {
	preset, err := PresetFor(presetName)
	if err != nil {
		return nil, err
	}

	if surface == nil {
		surface = NewSurface(preset)
	} else {
		surface.ClearControls()
	}
	surface.AddControl(ZoomControl)
	surface.AddControl(LayersControl)
	surface.AddControl(FullScreenControl)
	surface.AddControl(MeasureControl)
	surface.AddControl(DrawControl)

	return &Presenter{
		params:  params,
		surface: surface,
	}, nil
}

// Surface returns the map surface being presented
func (p *Presenter) Surface() *Surface {
	return p.surface
}

// Region returns the currently drawn search region, or nil when none is set
func (p *Presenter) Region() geometry.DrawnRegion {
	return p.region
}

// HandleDraw processes a newly drawn shape: all previously rendered result
// layers and any previous region overlay are removed, the new shape becomes
// the highlighted region overlay, and the search parameters are updated from
// it. A shape of an unsupported kind is reported and leaves the region
// unset.
func (p *Presenter) HandleDraw(shape interface{}) {
	for _, layer := range p.activeLayers {
		p.surface.RemoveLayer(layer)
	}
	p.activeLayers = nil

	p.surface.ClearRegionOverlay()
	p.surface.SetRegionOverlay(&RegionOverlay{
		Name:  regionOverlayName,
		Shape: shape,
		Style: regionStyle,
	})

	region, err := geometry.NormalizeDrawnRegion(shape)
	if err != nil {
		p.region = nil
		return
	}
	p.region = region
	region.ApplyTo(p.params)
}

// Explore tabulates search results and renders one interactive layer per
// distinct dataset id, colored from the palette and labeled with the group's
// granule count and total size
func (p *Presenter) Explore(results []model.Granule) (*Surface, error) {
	tbl := table.Build(results)

	for i, datasetID := range tbl.DatasetIDs() {
		rows := tbl.RowsForDataset(datasetID)

		var totalMB float64
		for _, row := range rows {
			totalMB += row.Result.SizeMB
		}
		totalGB := round2(totalMB / 1024)

		features, err := tbl.FeatureCollectionForDataset(datasetID)
		if err != nil {
			return nil, err
		}

		color := ColorFor(i)
		style := resultLayerStyle
		style.Color = color
		style.FillColor = color

		layer := &Layer{
			Name:         fmt.Sprintf("%s [Count: %d | Size: %g GB]", datasetID, len(rows), totalGB),
			DatasetID:    datasetID,
			Color:        color,
			GranuleCount: len(rows),
			TotalSizeGB:  totalGB,
			Features:     features,
			Style:        style,
			HoverStyle:   resultHoverStyle,
		}
		layer.OnHover(p.HandleHover)

		p.activeLayers = append(p.activeLayers, layer)
		p.surface.AddLayer(layer)
	}

	return p.surface, nil
}

// HandleHover populates the info panel from the hovered granule footprint,
// replacing any panel shown before
func (p *Presenter) HandleHover(feature *geojson.Feature) {
	relatedUrls := relatedURLsFromProperty(feature.Properties["related_urls"])

	var dataLinks []string
	var browseImages []string
	for _, link := range relatedUrls {
		if !strings.HasPrefix(link.URL, "https") {
			continue
		}
		switch link.Type {
		case string(model.GetData):
			dataLinks = append(dataLinks, link.URL)
		case string(model.GetRelatedVisualization):
			if len(browseImages) < maxBrowseImages {
				browseImages = append(browseImages, link.URL)
			}
		}
	}

	p.surface.SetInfoPanel(&InfoPanel{
		Title:        feature.PropertyString("native_id"),
		SizeMB:       round2(feature.PropertyFloat("size")),
		Start:        feature.PropertyString("beginning_date_time"),
		End:          feature.PropertyString("ending_date_time"),
		DataLinks:    dataLinks,
		BrowseImages: browseImages,
		Position:     "bottomright",
	})
}

// relatedURLsFromProperty recovers related URLs from a feature property,
// which is a typed slice for in-process features but a []interface{} of
// maps after a JSON round trip
func relatedURLsFromProperty(property interface{}) []model.RelatedURL {
	switch links := property.(type) {
	case []model.RelatedURL:
		return links
	case []interface{}:
		var out []model.RelatedURL
		for _, raw := range links {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			link := model.RelatedURL{}
			link.URL, _ = entry["URL"].(string)
			link.Type, _ = entry["Type"].(string)
			out = append(out, link)
		}
		return out
	default:
		if property != nil {
			log.Warn("Unexpected related_urls property shape", zap.Any("property", property))
		}
		return nil
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
