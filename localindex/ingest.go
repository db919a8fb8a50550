package localindex

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/cmr"
	"github.com/earthdata-tools/granule-broker/localindex/db"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/model"
)

// IngestResult summarizes one ingest run
type IngestResult struct {
	Found   int
	Indexed int
	Skipped int
}

// IngestFromCMR searches the CMR catalog with the given options and upserts
// every matched granule into the local index. Granules without usable spatial
// metadata are skipped, not treated as errors.
func IngestFromCMR(conn *sql.DB, options cmr.SearchOptions, cmrContext *cmr.Context) (IngestResult, error) {
	granules, err := cmr.GetGranules(options, cmrContext)
	if err != nil {
		return IngestResult{}, fmt.Errorf("searching CMR for granules to ingest: %v", err)
	}

	result, err := IngestGranules(conn, granules)
	if err != nil {
		return result, err
	}

	log.Info("Ingest run complete",
		zap.Int("found", result.Found),
		zap.Int("indexed", result.Indexed),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// IngestGranules flattens granule records and upserts them in one transaction
func IngestGranules(conn *sql.DB, granules []model.Granule) (IngestResult, error) {
	result := IngestResult{Found: len(granules)}

	rows := make([]*db.IndexedGranule, 0, len(granules))
	for _, granule := range granules {
		row, err := db.FromGranule(granule)
		if err != nil {
			log.Warn("Skipping granule with no indexable footprint",
				zap.String("conceptID", granule.Meta.ConceptID), zap.Error(err))
			result.Skipped++
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return result, nil
	}

	tx, err := conn.Begin()
	if err != nil {
		return result, fmt.Errorf("could not begin DB transaction: %v", err)
	}

	if err = db.InsertGranules(tx, rows); err != nil {
		tx.Rollback()
		return result, fmt.Errorf("inserting granules: %v", err)
	}
	if err = tx.Commit(); err != nil {
		return result, fmt.Errorf("committing ingest transaction: %v", err)
	}

	result.Indexed = len(rows)
	return result, nil
}
