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
	"database/sql"
	"errors"
	"net/url"
	"os"

	"github.com/earthdata-tools/granule-broker/log"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func() (*sql.DB, error)

// GetDbConnection opens a new database connection using DATABASE_URL.
func GetDbConnection() (*sql.DB, error) {
	connStr := os.Getenv(DATABASE_URL)
	if connStr == "" {
		return nil, errors.New("no DB connection string found in DATABASE_URL")
	}

	// XXX: pq expects SSL to be enabled if not explicitly disabled; we need to explicitly disable it
	dbURI, err := url.Parse(connStr)
	if err != nil {
		return nil, err
	}
	params := dbURI.Query()
	if params.Get("sslmode") == "" {
		params.Set("sslmode", "disable")
		dbURI.RawQuery = params.Encode()
	}

	log.Info("Creating database connection at: `" + dbURI.Redacted() + "`")
	db, err := sql.Open("postgres", dbURI.String())
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
