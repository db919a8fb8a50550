package main

import (
	_ "github.com/lib/pq"

	"github.com/earthdata-tools/granule-broker/util"
)

var getDbConnectionFunc util.ConnectionProvider = util.GetDbConnection
