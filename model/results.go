package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// GranuleResult holds the flat projection of a granule used for tabular and
// map display
type GranuleResult struct {
	ConceptID         string
	NativeID          string
	ProviderID        string
	DatasetID         string
	SizeMB            float64
	BeginningDateTime time.Time
	EndingDateTime    time.Time
	RelatedUrls       []RelatedURL
	Geometry          interface{}
}

// NewGranuleResult projects a nested granule record onto its flat display
// fields. The geometry is left nil; callers attach one when extraction
// succeeds.
func NewGranuleResult(g Granule) GranuleResult {
	begin, _ := ParseCMRTime(g.UMM.TemporalExtent.RangeDateTime.BeginningDateTime)
	end, _ := ParseCMRTime(g.UMM.TemporalExtent.RangeDateTime.EndingDateTime)

	return GranuleResult{
		ConceptID:         g.Meta.ConceptID,
		NativeID:          g.Meta.NativeID,
		ProviderID:        g.Meta.ProviderID,
		DatasetID:         g.DatasetID(),
		SizeMB:            g.Size(),
		BeginningDateTime: begin,
		EndingDateTime:    end,
		RelatedUrls:       g.TabularRelatedUrls(),
	}
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (r GranuleResult) GeoJSONFeature() (*geojson.Feature, error) {
	f := geojson.NewFeature(r.Geometry, r.ConceptID, map[string]interface{}{
		"size":                r.SizeMB,
		"concept_id":          r.ConceptID,
		"dataset_id":          r.DatasetID,
		"native_id":           r.NativeID,
		"provider_id":         r.ProviderID,
		"related_urls":        r.RelatedUrls,
		"beginning_date_time": formatResultTime(r.BeginningDateTime),
		"ending_date_time":    formatResultTime(r.EndingDateTime),
	})
	f.Bbox = f.ForceBbox()
	return f, nil
}

func formatResultTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(StandardTimeLayout)
}

// MultiGranuleResult is a container type for bundling multiple results
// together, e.g. as results from a discovery endpoint
type MultiGranuleResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiGranuleResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
