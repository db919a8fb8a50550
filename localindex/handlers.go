// Copyright 2023, the granule-broker authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package localindex

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/venicegeo/geojson-go/geojson"
	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/localindex/db"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/util"
)

// DiscoverHandler is a handler for /localindex/discover
// @Title localIndexDiscoverHandler
// @Description discovers granules from the local index
// @Accept  plain
// @Param   bbox       query   string  false        "The bounding box, as a GeoJSON Bounding box (x1,y1,x2,y2)"
// @Param   dataset_id query   string  false        "Dataset id to search within"
// @Param   start      query   string  false        "The minimum (earliest) temporal bound, as RFC 3339"
// @Param   end        query   string  false        "The maximum temporal bound, as RFC 3339"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /localindex/discover [get]
type DiscoverHandler struct {
	Context Context
}

// NewDiscoverHandler creates a new handler using configuration
// from environment variables
func NewDiscoverHandler(connectionProvider util.ConnectionProvider) (*DiscoverHandler, error) {
	db, err := connectionProvider()
	if err != nil {
		return nil, err
	}

	return &DiscoverHandler{
		Context: Context{DB: db},
	}, nil
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bbox, err := geojson.NewBoundingBox(r.FormValue("bbox"))
	if err != nil {
		message := fmt.Sprintf("The bbox value of %v is invalid", r.FormValue("bbox"))
		log.Warn(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusBadRequest)
		return
	}

	minTime := time.Unix(0, 0)
	if r.FormValue("start") != "" {
		if minTime, err = time.Parse(time.RFC3339, r.FormValue("start")); err != nil {
			message := fmt.Sprintf("start value of %v is invalid", r.FormValue("start"))
			log.Warn(message, zap.Error(err))
			util.HTTPError(w, message, http.StatusBadRequest)
			return
		}
	}
	maxTime := time.Now()
	if r.FormValue("end") != "" {
		if maxTime, err = time.Parse(time.RFC3339, r.FormValue("end")); err != nil {
			message := fmt.Sprintf("end value of %v is invalid", r.FormValue("end"))
			log.Warn(message, zap.Error(err))
			util.HTTPError(w, message, http.StatusBadRequest)
			return
		}
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	multiResult, err := discoverGranules(tx, bbox, r.FormValue("dataset_id"), minTime, maxTime)
	if err != nil {
		message := fmt.Sprintf("Error searching for granules: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	featureCollection, err := multiResult.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(featureCollection.String()))
}

// MetadataHandler is a handler for /localindex/granule/{id}
// @Title localIndexMetadataHandler
// @Description fetches a single indexed granule by concept id
// @Accept  plain
// @Param   id   path   string  false        "The concept id of the requested granule"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /localindex/granule/{id} [get]
type MetadataHandler struct {
	Context Context
}

// NewMetadataHandler creates a new handler using the environment and given DB
func NewMetadataHandler(connectionProvider util.ConnectionProvider) (*MetadataHandler, error) {
	db, err := connectionProvider()
	if err != nil {
		return nil, err
	}

	return &MetadataHandler{
		Context: Context{DB: db},
	}, nil
}

func (h MetadataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conceptID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No concept ID found in URL"
		log.Warn(message)
		util.HTTPError(w, message, http.StatusNotFound)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	granule, err := db.GetGranuleByID(tx, conceptID)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Granule not found: %s", conceptID)
		log.Info(message)
		util.HTTPError(w, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for granule: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	result, err := resultFromIndexedGranule(granule)
	if err != nil {
		message := fmt.Sprintf("Error reading granule footprint: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	feature, err := result.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting granule to geojson: %v", err)
		log.Error(message, zap.Error(err))
		util.HTTPError(w, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(feature.String()))
}
