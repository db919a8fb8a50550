package db

import (
	"database/sql"
	"time"
)

// InsertGranules upserts flattened granule rows inside one transaction.
// Re-ingesting a granule replaces its previous row.
func InsertGranules(tx *sql.Tx, rows []*IndexedGranule) error {
	statement, err := tx.Prepare(`
		INSERT INTO public.granules
		(concept_id, native_id, provider_id, dataset_id, size_mb, begin_time, end_time, data_url, browse_url, west, south, east, north, footprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (concept_id) DO UPDATE SET
			native_id = EXCLUDED.native_id,
			provider_id = EXCLUDED.provider_id,
			dataset_id = EXCLUDED.dataset_id,
			size_mb = EXCLUDED.size_mb,
			begin_time = EXCLUDED.begin_time,
			end_time = EXCLUDED.end_time,
			data_url = EXCLUDED.data_url,
			browse_url = EXCLUDED.browse_url,
			west = EXCLUDED.west,
			south = EXCLUDED.south,
			east = EXCLUDED.east,
			north = EXCLUDED.north,
			footprint = EXCLUDED.footprint`)
	if err != nil {
		return err
	}
	defer statement.Close()

	for _, row := range rows {
		if _, err = statement.Exec(
			row.ConceptID, row.NativeID, row.ProviderID, row.DatasetID, row.SizeMB,
			nullableTime(row.BeginTime), nullableTime(row.EndTime),
			row.DataURL, row.BrowseURL,
			row.West, row.South, row.East, row.North, string(row.Footprint),
		); err != nil {
			return err
		}
	}

	return nil
}

// GetGranuleByID fetches a single indexed granule by concept id
func GetGranuleByID(tx *sql.Tx, conceptID string) (*IndexedGranule, error) {
	rows, err := tx.Query(`
		SELECT concept_id, native_id, provider_id, dataset_id, size_mb, begin_time, end_time, data_url, browse_url, west, south, east, north, footprint
		FROM public.granules
		WHERE concept_id=$1
		LIMIT 1`,
		conceptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	return scanGranule(rows)
}

// SearchGranules returns the indexed granules overlapping a bounding box,
// optionally narrowed to one dataset id and a time window. Ordering is by
// begin time, newest first.
func SearchGranules(tx *sql.Tx, bbox [4]float64, datasetID string, minTime time.Time, maxTime time.Time) ([]*IndexedGranule, error) {
	rows, err := tx.Query(`
		SELECT concept_id, native_id, provider_id, dataset_id, size_mb, begin_time, end_time, data_url, browse_url, west, south, east, north, footprint
		FROM public.granules
		WHERE west <= $1 AND east >= $2 AND south <= $3 AND north >= $4
			AND ($5 = '' OR dataset_id = $5)
			AND (begin_time IS NULL OR begin_time <= $7)
			AND (end_time IS NULL OR end_time >= $6)
		ORDER BY begin_time DESC NULLS LAST`,
		bbox[2], bbox[0], bbox[3], bbox[1],
		datasetID,
		minTime, maxTime,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var granules []*IndexedGranule
	for rows.Next() {
		granule, err := scanGranule(rows)
		if err != nil {
			return nil, err
		}
		granules = append(granules, granule)
	}

	return granules, rows.Err()
}

func scanGranule(rows *sql.Rows) (*IndexedGranule, error) {
	granule := IndexedGranule{}
	var begin, end sql.NullTime
	var dataURL, browseURL sql.NullString
	var footprint string

	err := rows.Scan(&granule.ConceptID, &granule.NativeID, &granule.ProviderID, &granule.DatasetID,
		&granule.SizeMB, &begin, &end, &dataURL, &browseURL,
		&granule.West, &granule.South, &granule.East, &granule.North, &footprint)
	if err != nil {
		return nil, err
	}

	granule.BeginTime = begin.Time
	granule.EndTime = end.Time
	granule.DataURL = dataURL.String
	granule.BrowseURL = browseURL.String
	granule.Footprint = []byte(footprint)

	return &granule, nil
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
