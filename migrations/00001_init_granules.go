package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

// Up00001 creates the granules table and its search indexes
func Up00001(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE public.granules
		(
			concept_id text COLLATE pg_catalog."default" NOT NULL,
			native_id text COLLATE pg_catalog."default" NOT NULL,
			provider_id text COLLATE pg_catalog."default" NOT NULL,
			dataset_id text COLLATE pg_catalog."default" NOT NULL,
			size_mb real NOT NULL DEFAULT 0,
			begin_time timestamp without time zone,
			end_time timestamp without time zone,
			data_url text COLLATE pg_catalog."default",
			browse_url text COLLATE pg_catalog."default",
			west double precision NOT NULL,
			south double precision NOT NULL,
			east double precision NOT NULL,
			north double precision NOT NULL,
			footprint text COLLATE pg_catalog."default" NOT NULL,
			CONSTRAINT "granules_pk_conceptId" PRIMARY KEY (concept_id)
		)
		WITH (
			OIDS = FALSE
		);

		CREATE INDEX idx_granules_dataset_id
		ON public.granules (dataset_id);

		CREATE INDEX idx_granules_begin_time
		ON public.granules (begin_time);

		CREATE INDEX idx_granules_bounds
		ON public.granules (west, east, south, north);
		`)

	return err
}

// Down00001 undoes the db changes
func Down00001(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.granules;`)
	return err
}
