package main

import (
	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/earthdata-tools/granule-broker/cmr"
	"github.com/earthdata-tools/granule-broker/localindex"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/util"
)

func ingestAction(c *cli.Context) {
	database, err := getDbConnectionFunc()
	if err != nil {
		log.Error("Could not open database connection", zap.Error(err))
		return
	}
	defer database.Close()

	cmrContext := &cmr.Context{
		BaseCMRURL: util.GetCMRAPIURL(),
		Provider:   util.GetCMRProvider(),
	}

	options := cmr.SearchOptions{
		ConceptID: c.String("concept-id"),
		ShortName: c.String("short-name"),
		Provider:  c.String("provider"),
		PageSize:  c.Int("page-size"),
	}

	result, err := localindex.IngestFromCMR(database, options, cmrContext)
	if err != nil {
		log.Error("Ingest failed", zap.Error(err))
		return
	}

	log.Info("Ingest finished",
		zap.Int("found", result.Found),
		zap.Int("indexed", result.Indexed),
		zap.Int("skipped", result.Skipped))
}
