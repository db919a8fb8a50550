package cmr

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/table"
	"github.com/earthdata-tools/granule-broker/util"
)

// DiscoverHandler is a handler for /cmr/discover
// @Title cmrDiscoverHandler
// @Description discovers granules from the CMR catalog
// @Accept  plain
// @Param   concept_id query   string  false        "Collection concept id to search within"
// @Param   short_name query   string  false        "Collection short name to search within"
// @Param   provider   query   string  false        "CMR provider id"
// @Param   polygon    query   string  false        "Spatial filter polygon, as flat lon,lat pairs"
// @Param   point      query   string  false        "Spatial filter point, as lon,lat"
// @Param   line       query   string  false        "Spatial filter line, as flat lon,lat pairs"
// @Param   start      query   string  false        "The minimum (earliest) temporal bound, as RFC 3339"
// @Param   end        query   string  false        "The maximum temporal bound, as RFC 3339"
// @Param   page_size  query   int     false        "Maximum number of granules to return"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /cmr/discover [get]
type DiscoverHandler struct {
	Context *Context
}

// NewDiscoverHandler creates a new handler using configuration from
// environment variables
func NewDiscoverHandler() *DiscoverHandler {
	return &DiscoverHandler{
		Context: &Context{
			BaseCMRURL: util.GetCMRAPIURL(),
			Provider:   util.GetCMRProvider(),
		},
	}
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h *DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	options, err := searchOptionsFromRequest(r)
	if err != nil {
		message := fmt.Sprintf("Invalid search request: %v", err)
		log.Warn(message)
		util.HTTPError(w, message, http.StatusBadRequest)
		return
	}

	granules, err := GetGranules(options, h.Context)
	if err != nil {
		message := fmt.Sprintf("Error searching for granules: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusBadGateway)
		return
	}

	featureCollection, err := table.Build(granules).GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(featureCollection.String()))
}

func searchOptionsFromRequest(r *http.Request) (SearchOptions, error) {
	options := SearchOptions{
		ConceptID: r.FormValue("concept_id"),
		ShortName: r.FormValue("short_name"),
		Provider:  r.FormValue("provider"),
		Params: SearchParams{
			Polygon: r.FormValue("polygon"),
			Point:   r.FormValue("point"),
			Line:    r.FormValue("line"),
		},
	}

	if r.FormValue("start") != "" {
		start, err := time.Parse(time.RFC3339, r.FormValue("start"))
		if err != nil {
			return options, fmt.Errorf("start value of %v is invalid", r.FormValue("start"))
		}
		options.Temporal[0] = start
	}
	if r.FormValue("end") != "" {
		end, err := time.Parse(time.RFC3339, r.FormValue("end"))
		if err != nil {
			return options, fmt.Errorf("end value of %v is invalid", r.FormValue("end"))
		}
		options.Temporal[1] = end
	}
	if r.FormValue("page_size") != "" {
		var pageSize int
		if _, err := fmt.Sscanf(r.FormValue("page_size"), "%d", &pageSize); err != nil || pageSize < 0 {
			return options, fmt.Errorf("page_size value of %v is invalid", r.FormValue("page_size"))
		}
		options.PageSize = pageSize
	}

	return options, nil
}
