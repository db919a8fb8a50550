package model

import (
	"fmt"
	"time"
)

// CMR temporal extents are supposed to be RFC 3339 but in practice arrive with
// and without fractional seconds and with and without a trailing offset,
// depending on the provider that authored the metadata. Thus, we need lenient
// "multi-format" parsing functionality, implemented here.

// StandardTimeLayout is the preferred format to use when formatting CMR-bound datetimes
const StandardTimeLayout = "2006-01-02T15:04:05.999999999Z"

var cmrTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

// ParseCMRTime is a drop-in replacement for time.Parse, but matching against multiple possible CMR time formats
func ParseCMRTime(cmrTime string) (time.Time, error) {
	for _, layout := range cmrTimeLayouts {
		if output, err := time.Parse(layout, cmrTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("date could not be parsed by any expected time format: `%s`", cmrTime)
}
