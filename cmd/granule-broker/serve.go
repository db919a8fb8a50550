// Copyright 2023, the granule-broker authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/earthdata-tools/granule-broker/cmr"
	"github.com/earthdata-tools/granule-broker/localindex"
	"github.com/earthdata-tools/granule-broker/log"
	"github.com/earthdata-tools/granule-broker/util"
)

func createRouter() (*mux.Router, error) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})
	router.Handle("/cmr/discover", cmr.NewDiscoverHandler())

	if localDiscoverHandler, err := localindex.NewDiscoverHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/discover", localDiscoverHandler)
	} else {
		return nil, err
	}

	if localMetadataHandler, err := localindex.NewMetadataHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/granule/{id}", localMetadataHandler)
	} else {
		return nil, err
	}

	return router, nil
}

func serveAction(*cli.Context) {
	portStr := util.GetPortStr()

	if router, err := createRouter(); err == nil {
		launchServerFunc(portStr, router)
	} else {
		log.Error("Failed to create router", zap.Error(err))
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Info("Listening", zap.String("addr", portStr))
	if err := server.ListenAndServe(); err != nil {
		log.Error("Server stopped", zap.Error(err))
	}
}
