package cmr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestDiscoverHandler(t *testing.T) {
	// Mock
	server := mockCMRServer(t, nil)
	defer server.Close()
	handler := &DiscoverHandler{Context: &Context{BaseCMRURL: server.URL}}

	request := httptest.NewRequest("GET", "/cmr/discover?concept_id=C1-TEST", nil)
	recorder := httptest.NewRecorder()

	// Tested code
	handler.ServeHTTP(recorder, request)

	// Asserts
	assert.Equal(t, http.StatusOK, recorder.Code)

	parsed, err := geojson.Parse(recorder.Body.Bytes())
	assert.Nil(t, err)
	fc, ok := parsed.(*geojson.FeatureCollection)
	assert.True(t, ok)
	// the second mock granule has no spatial metadata and is not drawable
	assert.Len(t, fc.Features, 1)
	assert.Equal(t, "G1-TEST", fc.Features[0].IDStr())
}

func TestDiscoverHandler_InvalidTemporal(t *testing.T) {
	handler := &DiscoverHandler{Context: &Context{}}

	request := httptest.NewRequest("GET", "/cmr/discover?start=not-a-date", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDiscoverHandler_InvalidPageSize(t *testing.T) {
	handler := &DiscoverHandler{Context: &Context{}}

	request := httptest.NewRequest("GET", "/cmr/discover?page_size=-3", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
