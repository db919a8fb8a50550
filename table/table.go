// Package table flattens granule search results into a geometry-aware
// tabular structure for display and export.
package table

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/geometry"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/model"
)

// GeometryColumn is the name of the geometry column of a ResultTable
const GeometryColumn = "geometry"

// DefaultFields is the default column allow-list applied when no explicit
// field selection is given
var DefaultFields = []string{
	"size",
	"concept_id",
	"dataset_id",
	"native_id",
	"provider_id",
	"related_urls",
	"beginning_date_time",
	"ending_date_time",
	GeometryColumn,
}

// Row is one granule of a ResultTable: its projected cells plus its
// normalized geometry. Geometry is nil when spatial metadata was missing or
// malformed; such rows are retained.
type Row struct {
	Result   model.GranuleResult
	Cells    map[string]interface{}
	Geometry orb.Geometry
}

// ResultTable is a flat, geometry-aware view over a granule result list.
// Column order follows the allow-list; row order mirrors the input.
type ResultTable struct {
	Columns []string
	Rows    []Row
}

// Build flattens granule records into a ResultTable. Nested metadata
// collapses onto the projected columns of the allow-list (DefaultFields when
// fields is empty); related URLs are pre-filtered to download, direct access
// and browse links. Geometry extraction is best effort: a malformed record
// gets a nil geometry and a log line, never an error for the whole table.
func Build(results []model.Granule, fields ...string) *ResultTable {
	var columns []string
	if len(fields) == 0 {
		columns = append(columns, DefaultFields...)
	} else {
		// Callers may name fields by their nested metadata paths; collapse
		// them to flat column names first.
		for _, field := range fields {
			columns = append(columns, FlattenColumnName(field))
		}
	}

	tbl := &ResultTable{
		Columns: columns,
		Rows:    make([]Row, 0, len(results)),
	}

	for _, granule := range results {
		result := model.NewGranuleResult(granule)

		geom, err := geometry.GranuleGeometry(granule)
		if err != nil {
			log.Warn("Could not extract granule geometry, keeping row without one",
				zap.String("conceptID", result.ConceptID), zap.Error(err))
			geom = nil
		}

		tbl.Rows = append(tbl.Rows, Row{
			Result:   result,
			Cells:    projectCells(result, tbl.Columns),
			Geometry: geom,
		})
	}

	return tbl
}

// projectCells selects the allow-listed cells of a flattened granule. The
// geometry column lives on the row itself, not in the cell map.
func projectCells(result model.GranuleResult, columns []string) map[string]interface{} {
	flat := map[string]interface{}{
		"size":                result.SizeMB,
		"concept_id":          result.ConceptID,
		"dataset_id":          result.DatasetID,
		"native_id":           result.NativeID,
		"provider_id":         result.ProviderID,
		"related_urls":        result.RelatedUrls,
		"beginning_date_time": result.BeginningDateTime,
		"ending_date_time":    result.EndingDateTime,
	}

	cells := make(map[string]interface{}, len(columns))
	for _, column := range columns {
		if column == GeometryColumn {
			continue
		}
		if value, ok := flat[column]; ok {
			cells[column] = value
		}
	}
	return cells
}

// DatasetIDs returns the distinct dataset ids of the table in first-seen order
func (t *ResultTable) DatasetIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, row := range t.Rows {
		if !seen[row.Result.DatasetID] {
			seen[row.Result.DatasetID] = true
			ids = append(ids, row.Result.DatasetID)
		}
	}
	return ids
}

// RowsForDataset returns the row subset belonging to one dataset id, in
// table order
func (t *ResultTable) RowsForDataset(datasetID string) []Row {
	var rows []Row
	for _, row := range t.Rows {
		if row.Result.DatasetID == datasetID {
			rows = append(rows, row)
		}
	}
	return rows
}
