package util

import (
	"net/http"
	"time"
)

var sharedClient = &http.Client{Timeout: 60 * time.Second}

// HTTPClient returns the shared HTTP client used for outbound catalog requests
func HTTPClient() *http.Client {
	return sharedClient
}

// HTTPError writes an error message and status code to the response
func HTTPError(w http.ResponseWriter, message string, status int) {
	http.Error(w, message, status)
}
