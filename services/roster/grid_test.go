package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterly/models"
)

func strPtr(s string) *string { return &s }

func TestBuildSlotGrid(t *testing.T) {
	t.Run("default hours", func(t *testing.T) {
		grid := buildSlotGrid(models.DefaultOperatingHours())
		require.Len(t, grid, 7)
		for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
			require.Len(t, grid[day], 8, day)
			assert.Equal(t, 540, grid[day][0].Start)
			assert.Equal(t, 1020, grid[day][7].End)
		}
		assert.Empty(t, grid["Saturday"])
		assert.Empty(t, grid["Sunday"])
	})

	t.Run("partial trailing slot", func(t *testing.T) {
		hours := models.OperatingHours{
			"Monday": {Open: strPtr("09:00"), Close: strPtr("12:30")},
		}
		grid := buildSlotGrid(hours)
		require.Len(t, grid["Monday"], 4)
		assert.Equal(t, models.Slot{Start: 720, End: 750, Assigned: []models.Assignment{}}, grid["Monday"][3])
	})

	t.Run("close at or before open extends to end of day", func(t *testing.T) {
		hours := models.OperatingHours{
			"Friday": {Open: strPtr("22:00"), Close: strPtr("02:00")},
		}
		grid := buildSlotGrid(hours)
		require.Len(t, grid["Friday"], 2)
		assert.Equal(t, 1320, grid["Friday"][0].Start)
		assert.Equal(t, 1440, grid["Friday"][1].End)
	})

	t.Run("unparsable clocks close the day", func(t *testing.T) {
		hours := models.OperatingHours{
			"Monday": {Open: strPtr("9am"), Close: strPtr("17:00")},
		}
		grid := buildSlotGrid(hours)
		assert.Empty(t, grid["Monday"])
	})
}

func TestDayWindow(t *testing.T) {
	start, end, ok := dayWindow(models.DayHours{Open: strPtr("08:00"), Close: strPtr("16:00")})
	require.True(t, ok)
	assert.Equal(t, 480, start)
	assert.Equal(t, 960, end)

	_, _, ok = dayWindow(models.DayHours{})
	assert.False(t, ok)
}
