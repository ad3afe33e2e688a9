package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneNameFromEnv(t *testing.T) {
	cases := []struct {
		tz   string
		want string
	}{
		{"Europe/Berlin", "Europe/Berlin"},
		{":Asia/Tokyo", "Asia/Tokyo"},
		{"", "UTC"},
	}
	for _, c := range cases {
		t.Run("TZ="+c.tz, func(t *testing.T) {
			t.Setenv("TZ", c.tz)
			got, ok := ZoneName()
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestZoneNameEnvWinsOverProbe(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	got, ok := ZoneName()
	require.True(t, ok)
	assert.Equal(t, "America/New_York", got)
}
