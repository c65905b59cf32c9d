package timezone_test

import (
	"testing"
	"time"
	"wishnest/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero(), "expected Now to return a non-zero time")
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	converted := timezone.ToAppTime(utc)

	assert.True(t, utc.Equal(converted), "conversion must not change the instant")
	assert.Equal(t, timezone.GetLocation(), converted.Location())
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestParse_Invalid(t *testing.T) {
	_, err := timezone.Parse("2006-01-02", "not-a-date")

	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(ts, "2006-01-02")

	assert.NotEmpty(t, formatted)
}
