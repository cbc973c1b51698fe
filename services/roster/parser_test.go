package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterly/models"
)

func TestParseAvailabilityString(t *testing.T) {
	t.Run("single block", func(t *testing.T) {
		got := ParseAvailabilityString("Mon 09:00-13:00")
		require.Len(t, got, 1)
		assert.Equal(t, []models.Interval{{Start: 540, End: 780}}, got["Monday"])
	})

	t.Run("multiple blocks and separators", func(t *testing.T) {
		got := ParseAvailabilityString("Mon 09:00-13:00, Wednesday 10:00-14:00; Fri 08:00-12:00")
		require.Len(t, got, 3)
		assert.Equal(t, []models.Interval{{Start: 540, End: 780}}, got["Monday"])
		assert.Equal(t, []models.Interval{{Start: 600, End: 840}}, got["Wednesday"])
		assert.Equal(t, []models.Interval{{Start: 480, End: 720}}, got["Friday"])
	})

	t.Run("case insensitive day tokens", func(t *testing.T) {
		got := ParseAvailabilityString("TUE 09:00-11:00, thursday 12:00-15:00")
		require.Len(t, got, 2)
		assert.Contains(t, got, "Tuesday")
		assert.Contains(t, got, "Thursday")
	})

	t.Run("spaces around the dash", func(t *testing.T) {
		got := ParseAvailabilityString("Mon 09:00 - 13:00")
		require.Len(t, got, 1)
		assert.Equal(t, []models.Interval{{Start: 540, End: 780}}, got["Monday"])
	})

	t.Run("end before start runs through midnight", func(t *testing.T) {
		got := ParseAvailabilityString("Fri 22:00-02:00")
		require.Len(t, got, 1)
		assert.Equal(t, []models.Interval{{Start: 1320, End: 1440}}, got["Friday"])
	})

	t.Run("repeated day accumulates intervals", func(t *testing.T) {
		got := ParseAvailabilityString("Mon 09:00-11:00, Mon 14:00-17:00")
		require.Len(t, got["Monday"], 2)
	})

	t.Run("malformed blocks are skipped", func(t *testing.T) {
		got := ParseAvailabilityString("Blursday 09:00-13:00, Mon 9am-1pm, Tue 10-14, Wed, Thu 10:00-14:00")
		require.Len(t, got, 1)
		assert.Equal(t, []models.Interval{{Start: 600, End: 840}}, got["Thursday"])
	})

	t.Run("garbage yields empty map", func(t *testing.T) {
		assert.Empty(t, ParseAvailabilityString("not a schedule at all"))
		assert.Empty(t, ParseAvailabilityString(""))
	})
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"12:5", 0, false},
		{"10am", 0, false},
		{"10", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseClock(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestAvailabilityCovers(t *testing.T) {
	a := models.AvailabilityIntervals{
		"Monday": {{Start: 540, End: 720}, {Start: 720, End: 900}},
	}
	assert.True(t, a.Covers("Monday", 540, 600))
	assert.True(t, a.Covers("Monday", 780, 840))
	// The slot straddles two adjacent intervals; neither contains it alone.
	assert.False(t, a.Covers("Monday", 690, 750))
	assert.False(t, a.Covers("Tuesday", 540, 600))
}
