package timezone_test

import (
	"multimedia/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { timezone.SetLocation("UTC") })

	timezone.SetLocation("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())

	timezone.SetLocation("Not/AZone")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.SetLocation("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { timezone.SetLocation("UTC") })

	timezone.SetLocation("Asia/Jakarta")

	captured := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01T19:00:00+07:00", timezone.Format(captured, time.RFC3339))
	assert.Equal(t, "", timezone.Format(time.Time{}, time.RFC3339))
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}
