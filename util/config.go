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

package util

import (
	"os"

	"github.com/earthdata-tools/granule-broker/log"
)

// Environment variables
const (
	CMR_API_URL  = "CMR_API_URL"
	CMR_PROVIDER = "CMR_PROVIDER"
	DATABASE_URL = "DATABASE_URL"
	PORT         = "PORT"
)

const defaultCMRURL = "https://cmr.earthdata.nasa.gov"

// GetCMRAPIURL returns the base CMR URL from the CMR_API_URL environment
// variable, falling back to the public Earthdata endpoint
func GetCMRAPIURL() string {
	cmrURL, ok := os.LookupEnv(CMR_API_URL)
	if !ok {
		log.Info("Did not get explicit CMR URL from the environment. Using default public endpoint: " + defaultCMRURL)
		return defaultCMRURL
	}
	return cmrURL
}

// GetCMRProvider returns a string for the CMR_PROVIDER environment variable
func GetCMRProvider() string {
	provider, ok := os.LookupEnv(CMR_PROVIDER)
	if !ok {
		log.Info("Did not get a CMR provider from the environment. Searches will not be restricted by provider.")
	}
	return provider
}

// GetPortStr returns the listen address from the PORT environment variable
// or the default of :8080
func GetPortStr() string {
	if port, ok := os.LookupEnv(PORT); ok {
		return ":" + port
	}
	return ":8080"
}
