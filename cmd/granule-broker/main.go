package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/earthdata-tools/granule-broker/log"
)

func main() {
	defer log.Sync()
	if err := createCliApp().Run(os.Args); err != nil {
		log.Error("Error executing CLI app", zap.Error(err))
	}
}
