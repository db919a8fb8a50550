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

// Package cmr implements a client for the NASA Common Metadata Repository
// granule and collection search APIs.
package cmr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/model"
	"github.com/earthdata-tools/granule-broker/util"
)

const granuleSearchPath = "search/granules.umm_json"
const collectionSearchPath = "search/collections.umm_json"

// GetGranules returns the granules matching the given search options
func GetGranules(options SearchOptions, context *Context) ([]model.Granule, error) {
	query := granuleQuery(options, context)

	response, err := cmrRequest(cmrRequestInput{inputURL: granuleSearchPath, query: query.Encode()}, context)
	if err != nil {
		log.Error("Failed to complete CMR granule search", zap.String("query", query.Encode()), zap.Error(err))
		return nil, err
	}
	defer response.Body.Close()

	if err = checkResponseStatus(response, "granule search"); err != nil {
		return nil, err
	}

	body, _ := io.ReadAll(response.Body)
	var parsed granuleSearchResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		log.Error("Failed to unmarshal response from CMR granule search",
			zap.String("response", string(body)), zap.Error(err))
		return nil, fmt.Errorf("CMR returned an unexpected granule search response: %w", err)
	}

	return parsed.Items, nil
}

// Hits returns the total number of granules matching the given search
// options, without fetching any of them
func Hits(options SearchOptions, context *Context) (int, error) {
	query := granuleQuery(options, context)
	query.Set("page_size", "0")

	response, err := cmrRequest(cmrRequestInput{inputURL: granuleSearchPath, query: query.Encode()}, context)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if err = checkResponseStatus(response, "granule hits"); err != nil {
		return 0, err
	}

	hits := response.Header.Get("CMR-Hits")
	if hits == "" {
		return 0, errors.New("CMR response is missing the CMR-Hits header")
	}
	return strconv.Atoi(hits)
}

// GetCollections returns the collections matching the given search options
func GetCollections(options CollectionSearchOptions, context *Context) ([]model.Collection, error) {
	query := url.Values{}
	if options.Keyword != "" {
		query.Set("keyword", options.Keyword)
	}
	if options.ShortName != "" {
		query.Set("short_name", options.ShortName)
	}
	setProvider(query, options.Provider, context)
	setPageSize(query, options.PageSize)

	response, err := cmrRequest(cmrRequestInput{inputURL: collectionSearchPath, query: query.Encode()}, context)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if err = checkResponseStatus(response, "collection search"); err != nil {
		return nil, err
	}

	body, _ := io.ReadAll(response.Body)
	var parsed collectionSearchResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		log.Error("Failed to unmarshal response from CMR collection search",
			zap.String("response", string(body)), zap.Error(err))
		return nil, fmt.Errorf("CMR returned an unexpected collection search response: %w", err)
	}

	return parsed.Items, nil
}

func granuleQuery(options SearchOptions, context *Context) url.Values {
	query := url.Values{}
	if options.ConceptID != "" {
		query.Set("concept_id", options.ConceptID)
	}
	if options.ShortName != "" {
		query.Set("short_name", options.ShortName)
	}
	setProvider(query, options.Provider, context)
	if !options.Temporal[0].IsZero() || !options.Temporal[1].IsZero() {
		query.Set("temporal", formatTemporal(options.Temporal))
	}
	if options.Params.Polygon != "" {
		query.Set("polygon", options.Params.Polygon)
	}
	if options.Params.Point != "" {
		query.Set("point", options.Params.Point)
	}
	if options.Params.Line != "" {
		query.Set("line", options.Params.Line)
	}
	setPageSize(query, options.PageSize)
	return query
}

func setProvider(query url.Values, provider string, context *Context) {
	if provider == "" {
		provider = context.Provider
	}
	if provider != "" {
		query.Set("provider", provider)
	}
}

func setPageSize(query url.Values, pageSize int) {
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
}

func formatTemporal(temporal [2]time.Time) string {
	var start, end string
	if !temporal[0].IsZero() {
		start = temporal[0].Format(time.RFC3339)
	}
	if !temporal[1].IsZero() {
		end = temporal[1].Format(time.RFC3339)
	}
	return start + "," + end
}

func checkResponseStatus(response *http.Response, operation string) error {
	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("CMR rejected the %v request: %v", operation, response.Status)
		log.Warn(message)
		return errors.New(message)
	case response.StatusCode >= 500:
		message := fmt.Sprintf("CMR failed to complete the %v request: %v", operation, response.Status)
		log.Error(message)
		return errors.New(message)
	default:
		//no op
	}
	return nil
}

// cmrRequest performs the request
func cmrRequest(input cmrRequestInput, context *Context) (*http.Response, error) {
	baseURL, err := url.Parse(context.BaseCMRURL)
	if err != nil {
		log.Error("Failed to parse CMR base URL", zap.String("url", context.BaseCMRURL), zap.Error(err))
		return nil, err
	}
	relativeURL, _ := url.Parse(input.inputURL)
	resolvedURL := baseURL.ResolveReference(relativeURL)
	resolvedURL.RawQuery = input.query

	request, err := http.NewRequest("GET", resolvedURL.String(), nil)
	if err != nil {
		log.Error("Failed to make a new HTTP request", zap.String("url", resolvedURL.String()), zap.Error(err))
		return nil, err
	}
	request.Header.Set("Client-Id", context.AppName())
	request.Header.Set("X-Request-Id", context.SessionID())

	log.Info("Requesting data from CMR",
		zap.String("url", resolvedURL.Redacted()), zap.String("session", context.SessionID()))
	return util.HTTPClient().Do(request)
}
