package main

import (
	"github.com/pressly/goose"
	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/earthdata-tools/granule-broker/log"
	_ "github.com/earthdata-tools/granule-broker/migrations"
)

func migrateDatabaseAction(*cli.Context) {
	database, err := getDbConnectionFunc()
	if err != nil {
		log.Error("Could not open database connection", zap.Error(err))
		return
	}
	defer database.Close()

	if err = goose.Run("up", database, "."); err != nil {
		log.Error("Migration failed", zap.Error(err))
	}
}
