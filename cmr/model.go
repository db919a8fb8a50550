package cmr

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/earthdata-tools/granule-broker/model"
)

// Context is the context for a CMR operation
type Context struct {
	BaseCMRURL string
	Provider   string
	sessionID  string
}

// AppName returns the client id reported to CMR
func (c *Context) AppName() string {
	return "granule-broker"
}

// SessionID returns a session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	return c.sessionID
}

// SearchParams carries the spatial search parameters produced by drawing on
// the map. At most one of the polygon/point/line keys is set at a time; a new
// drawn region replaces whatever spatial key was set before.
type SearchParams struct {
	Polygon string
	Point   string
	Line    string
}

// SetPolygon implements the geometry.ParamSetter interface
func (p *SearchParams) SetPolygon(ring orb.Ring) {
	p.clear()
	p.Polygon = formatCoords([]orb.Point(ring))
}

// SetPoint implements the geometry.ParamSetter interface
func (p *SearchParams) SetPoint(point orb.Point) {
	p.clear()
	p.Point = formatCoords([]orb.Point{point})
}

// SetLine implements the geometry.ParamSetter interface
func (p *SearchParams) SetLine(line orb.LineString) {
	p.clear()
	p.Line = formatCoords([]orb.Point(line))
}

func (p *SearchParams) clear() {
	p.Polygon = ""
	p.Point = ""
	p.Line = ""
}

// formatCoords renders points as the flat lon,lat,lon,lat form the CMR
// spatial parameters expect
func formatCoords(points []orb.Point) string {
	parts := make([]string, 0, len(points)*2)
	for _, p := range points {
		parts = append(parts,
			strconv.FormatFloat(p[0], 'f', -1, 64),
			strconv.FormatFloat(p[1], 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// SearchOptions are the options for a granule search request
type SearchOptions struct {
	ConceptID string
	ShortName string
	Provider  string
	Temporal  [2]time.Time
	PageSize  int
	Params    SearchParams
}

// CollectionSearchOptions are the options for a collection search request
type CollectionSearchOptions struct {
	Keyword   string
	ShortName string
	Provider  string
	PageSize  int
}

type granuleSearchResponse struct {
	Hits  int             `json:"hits"`
	Took  int             `json:"took"`
	Items []model.Granule `json:"items"`
}

type collectionSearchResponse struct {
	Hits  int                `json:"hits"`
	Items []model.Collection `json:"items"`
}

type cmrRequestInput struct {
	inputURL string // URL may be relative or absolute based on BaseCMRURL
	query    string
}
