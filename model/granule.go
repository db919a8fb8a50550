package model

import (
	"strings"
)

// Granule is a single UMM-G record as returned by the CMR granule search API.
// The meta block carries catalog identifiers; the umm block carries the
// metadata authored by the provider.
type Granule struct {
	Meta Meta `json:"meta"`
	UMM  UMM  `json:"umm"`
}

// Meta holds the CMR catalog fields of a granule
type Meta struct {
	ConceptID           string `json:"concept-id"`
	NativeID            string `json:"native-id"`
	ProviderID          string `json:"provider-id"`
	CollectionConceptID string `json:"collection-concept-id"`
	RevisionID          int    `json:"revision-id"`
}

// UMM holds the provider-authored metadata fields of a granule
type UMM struct {
	GranuleUR           string              `json:"GranuleUR"`
	TemporalExtent      TemporalExtent      `json:"TemporalExtent"`
	SpatialExtent       SpatialExtent       `json:"SpatialExtent"`
	DataGranule         DataGranuleInfo     `json:"DataGranule"`
	CollectionReference CollectionReference `json:"CollectionReference"`
	RelatedUrls         []RelatedURL        `json:"RelatedUrls"`
}

// TemporalExtent is the time coverage of a granule
type TemporalExtent struct {
	RangeDateTime RangeDateTime `json:"RangeDateTime"`
}

// RangeDateTime is a start/end timestamp pair, kept as strings because
// providers do not agree on a single timestamp format (see ParseCMRTime)
type RangeDateTime struct {
	BeginningDateTime string `json:"BeginningDateTime"`
	EndingDateTime    string `json:"EndingDateTime"`
}

// SpatialExtent wraps the horizontal spatial domain of a granule
type SpatialExtent struct {
	HorizontalSpatialDomain HorizontalSpatialDomain `json:"HorizontalSpatialDomain"`
}

// HorizontalSpatialDomain wraps the geometry of a granule
type HorizontalSpatialDomain struct {
	Geometry SpatialGeometry `json:"Geometry"`
}

// SpatialGeometry is the CMR spatial metadata union. Exactly one of
// BoundingRectangles or GPolygons is expected to be populated.
type SpatialGeometry struct {
	BoundingRectangles []BoundingRectangle `json:"BoundingRectangles,omitempty"`
	GPolygons          []GPolygon          `json:"GPolygons,omitempty"`
}

// BoundingRectangle is an axis-aligned lat/lon box spatial extent
type BoundingRectangle struct {
	WestBoundingCoordinate  float64 `json:"WestBoundingCoordinate"`
	SouthBoundingCoordinate float64 `json:"SouthBoundingCoordinate"`
	EastBoundingCoordinate  float64 `json:"EastBoundingCoordinate"`
	NorthBoundingCoordinate float64 `json:"NorthBoundingCoordinate"`
}

// GPolygon is an arbitrary polygonal spatial extent
type GPolygon struct {
	Boundary Boundary `json:"Boundary"`
}

// Boundary is an ordered list of polygon vertices
type Boundary struct {
	Points []BoundaryPoint `json:"Points"`
}

// BoundaryPoint is a single polygon vertex
type BoundaryPoint struct {
	Longitude float64 `json:"Longitude"`
	Latitude  float64 `json:"Latitude"`
}

// DataGranuleInfo holds archive file information for a granule
type DataGranuleInfo struct {
	ArchiveAndDistributionInformation []ArchiveInfo `json:"ArchiveAndDistributionInformation"`
}

// ArchiveInfo describes one archived file belonging to a granule
type ArchiveInfo struct {
	Name        string  `json:"Name,omitempty"`
	Size        float64 `json:"Size,omitempty"`
	SizeUnit    string  `json:"SizeUnit,omitempty"`
	SizeInBytes int64   `json:"SizeInBytes,omitempty"`
}

// CollectionReference identifies the collection a granule belongs to
type CollectionReference struct {
	ConceptID  string `json:"ConceptId,omitempty"`
	ShortName  string `json:"ShortName,omitempty"`
	Version    string `json:"Version,omitempty"`
	EntryTitle string `json:"EntryTitle,omitempty"`
}

// RelatedURL is a single link attached to a granule
type RelatedURL struct {
	URL         string `json:"URL"`
	Type        string `json:"Type"`
	Subtype     string `json:"Subtype,omitempty"`
	Description string `json:"Description,omitempty"`
}

// Size returns the total size of the granule in MB. Archive entries report
// either a Size (already in the provider's unit, MB in the overwhelming
// majority of records) or a SizeInBytes; Size wins when present.
func (g Granule) Size() float64 {
	var totalMB float64
	var totalBytes int64
	for _, archive := range g.UMM.DataGranule.ArchiveAndDistributionInformation {
		totalMB += archive.Size
		totalBytes += archive.SizeInBytes
	}
	if totalMB > 0 {
		return totalMB
	}
	if totalBytes > 0 {
		return float64(totalBytes) / (1024 * 1024)
	}
	return 0
}

// DatasetID returns the best available identifier grouping this granule into
// its collection: the collection concept id, short name or entry title, in
// that order. Records missing all three get a synthetic id derived from the
// provider and native ids.
func (g Granule) DatasetID() string {
	ref := g.UMM.CollectionReference
	switch {
	case ref.ConceptID != "":
		return ref.ConceptID
	case ref.ShortName != "":
		return ref.ShortName
	case ref.EntryTitle != "":
		return ref.EntryTitle
	}
	nativeID := g.Meta.NativeID
	if len(nativeID) > 4 {
		nativeID = nativeID[:4]
	}
	return g.Meta.ProviderID + nativeID
}

func (g Granule) filterRelatedLinks(urlType RelatedURLType) []string {
	var matched []string
	for _, link := range g.UMM.RelatedUrls {
		if link.Type == string(urlType) {
			matched = append(matched, link.URL)
		}
	}
	return matched
}

// DataLinks returns the HTTPS download links for the granule
func (g Granule) DataLinks() []string {
	return g.filterRelatedLinks(GetData)
}

// DirectAccessLinks returns the in-region S3 download links for the granule
func (g Granule) DirectAccessLinks() []string {
	return g.filterRelatedLinks(GetDataDirectAccess)
}

// DatavizLinks returns the browse imagery links for the granule
func (g Granule) DatavizLinks() []string {
	return g.filterRelatedLinks(GetRelatedVisualization)
}

// S3CredentialsEndpoint returns the S3 credentials endpoint advertised by the
// granule, or an empty string if it has none
func (g Granule) S3CredentialsEndpoint() string {
	for _, link := range g.UMM.RelatedUrls {
		if strings.Contains(link.URL, "/s3credentials") {
			return link.URL
		}
	}
	return ""
}

// TabularRelatedUrls returns the related URLs retained on tabulated results:
// download, direct access and browse imagery links, in input order
func (g Granule) TabularRelatedUrls() []RelatedURL {
	var matched []RelatedURL
	for _, link := range g.UMM.RelatedUrls {
		for _, urlType := range TabularURLTypes {
			if link.Type == string(urlType) {
				matched = append(matched, link)
				break
			}
		}
	}
	return matched
}
