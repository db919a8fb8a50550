package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCMRTime_AcceptedLayouts(t *testing.T) {
	expected := time.Date(2019, 7, 8, 9, 10, 11, 0, time.UTC)

	for _, input := range []string{
		"2019-07-08T09:10:11.000Z",
		"2019-07-08T09:10:11Z",
		"2019-07-08T09:10:11",
		"2019-07-08T09:10:11+00:00",
	} {
		parsed, err := ParseCMRTime(input)
		assert.Nil(t, err, "failed to parse %s", input)
		assert.True(t, expected.Equal(parsed), "wrong time for %s", input)
	}
}

func TestParseCMRTime_FractionalSeconds(t *testing.T) {
	parsed, err := ParseCMRTime("2019-07-08T09:10:11.123456789Z")
	assert.Nil(t, err)
	assert.Equal(t, 123456789, parsed.Nanosecond())
}

func TestParseCMRTime_Invalid(t *testing.T) {
	_, err := ParseCMRTime("07/08/2019")
	assert.NotNil(t, err)
}
