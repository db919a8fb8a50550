package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

// version is overridden at build time via -ldflags
var version = "dev"

func versionAction(*cli.Context) {
	fmt.Println("granule-broker " + version)
}
