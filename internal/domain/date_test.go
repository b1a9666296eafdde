package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_LocalMidnight(t *testing.T) {
	d, err := ParseDate("2025-08-04")
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 4, d.Day())
	assert.Equal(t, 0, d.Hour())
	// Parsing as UTC would shift the displayed day for western timezones.
	assert.Equal(t, time.Local, d.Location())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("08/04/2025")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.September, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-05"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}
