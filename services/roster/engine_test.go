package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterly/models"
)

func testWorker(name, email, availability string, workStudy bool) models.Worker {
	return models.Worker{
		ID:           name,
		FirstName:    name,
		Email:        email,
		WorkStudy:    workStudy,
		Availability: availability,
		Parsed:       ParseAvailabilityString(availability),
	}
}

func defaultTestGrid() map[string][]models.Slot {
	return buildSlotGrid(models.DefaultOperatingHours())
}

func assignedHours(grid map[string][]models.Slot, email string) int {
	total := 0
	for _, slots := range grid {
		for _, slot := range slots {
			for _, a := range slot.Assigned {
				if a.Email == email {
					total++
				}
			}
		}
	}
	return total
}

func TestAssignWorkStudy(t *testing.T) {
	opts := GenerateOptions{}.normalized()

	t.Run("receives exactly the mandatory hours in one block", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		w := testWorker("Ada", "ada@example.com", "Mon 09:00-17:00", true)
		require.NoError(t, run.assignWorkStudy([]models.Worker{w}))
		assert.Equal(t, 5, assignedHours(run.grid, "ada@example.com"))

		// All five hours sit in one contiguous block at the start of Monday.
		for i := 0; i < 5; i++ {
			require.Len(t, run.grid["Monday"][i].Assigned, 1)
			assert.Equal(t, "ada@example.com", run.grid["Monday"][i].Assigned[0].Email)
			assert.True(t, run.grid["Monday"][i].Assigned[0].WorkStudy)
		}
		assert.Empty(t, run.grid["Monday"][5].Assigned)
	})

	t.Run("short contiguous run is fatal even with enough total hours", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		// Six hours in total, but no single run longer than three.
		w := testWorker("Ben", "ben@example.com", "Mon 09:00-12:00, Tue 09:00-12:00", true)
		err := run.assignWorkStudy([]models.Worker{w})
		require.Error(t, err)

		wsErr, ok := AsWorkStudyError(err)
		require.True(t, ok)
		assert.Equal(t, "Ben", wsErr.Worker)
		assert.Equal(t, 5, wsErr.RequiredHours)
		assert.Equal(t, 6, wsErr.AvailableHours)
		assert.Equal(t, 3, wsErr.LongestRun)
		require.NotEmpty(t, wsErr.Breakdown)
		assert.Equal(t, "Monday", wsErr.Breakdown[0].Day)
		assert.Equal(t, 3, wsErr.Breakdown[0].MatchedHours)
	})

	t.Run("capacity contention is fatal", func(t *testing.T) {
		hours := models.OperatingHours{
			"Monday": {Open: strPtr("09:00"), Close: strPtr("14:00")},
		}
		run := newAssignmentRun(buildSlotGrid(hours), opts)
		pool := []models.Worker{
			testWorker("A", "a@example.com", "Mon 09:00-14:00", true),
			testWorker("B", "b@example.com", "Mon 09:00-14:00", true),
			testWorker("C", "c@example.com", "Mon 09:00-14:00", true),
		}
		// Two per slot fit; the third has nowhere to go.
		err := run.assignWorkStudy(pool)
		require.Error(t, err)
		wsErr, ok := AsWorkStudyError(err)
		require.True(t, ok)
		assert.Equal(t, "C", wsErr.Worker)
	})
}

func TestTryAssign(t *testing.T) {
	opts := GenerateOptions{}.normalized()

	t.Run("never exceeds slot capacity", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		for i, email := range []string{"a@x", "b@x", "c@x", "d@x", "e@x"} {
			w := testWorker(string(rune('A'+i)), email, "Mon 09:00-17:00, Tue 09:00-17:00", false)
			run.tryAssign(w, 8)
		}
		for _, slots := range run.grid {
			for _, slot := range slots {
				assert.LessOrEqual(t, len(slot.Assigned), opts.MaxWorkersPerShift)
			}
		}
	})

	t.Run("never exceeds the per-worker hour ceiling", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), GenerateOptions{MaxHoursPerWorker: 7}.normalized())
		w := testWorker("Ada", "ada@x", "Mon 09:00-17:00, Tue 09:00-17:00, Wed 09:00-17:00", false)
		run.tryAssign(w, 50)
		assert.Equal(t, 7, assignedHours(run.grid, "ada@x"))
	})

	t.Run("never places outside availability", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		w := testWorker("Ada", "ada@x", "Tue 10:00-14:00", false)
		run.tryAssign(w, 20)
		for day, slots := range run.grid {
			for _, slot := range slots {
				for range slot.Assigned {
					assert.True(t, w.Parsed.Covers(day, slot.Start, slot.End),
						"assignment outside availability on %s %d-%d", day, slot.Start, slot.End)
				}
			}
		}
		assert.Equal(t, 4, assignedHours(run.grid, "ada@x"))
	})

	t.Run("fractional remainder under one hour is left unplaced", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		w := testWorker("Ada", "ada@x", "Mon 09:00-17:00", false)
		assert.False(t, run.tryAssign(w, 5.5))
		assert.Equal(t, 5, assignedHours(run.grid, "ada@x"))
	})
}

func TestFairFill(t *testing.T) {
	opts := GenerateOptions{}.normalized()

	t.Run("splits leftover capacity evenly", func(t *testing.T) {
		hours := models.OperatingHours{
			"Monday":  {Open: strPtr("09:00"), Close: strPtr("17:00")},
			"Tuesday": {Open: strPtr("09:00"), Close: strPtr("17:00")},
		}
		run := newAssignmentRun(buildSlotGrid(hours), opts)
		regular := []models.Worker{
			testWorker("A", "a@x", "Mon 09:00-17:00, Tue 09:00-17:00", false),
			testWorker("B", "b@x", "Mon 09:00-17:00, Tue 09:00-17:00", false),
		}
		// 16 slots x 2 capacity and no work-study hours: 16h target each.
		target := run.fairFill(regular, 0)
		assert.InDelta(t, 16.0, target, 0.001)
		assert.Equal(t, 16, assignedHours(run.grid, "a@x"))
		assert.Equal(t, 16, assignedHours(run.grid, "b@x"))
	})

	t.Run("under-fill is tolerated", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		regular := []models.Worker{
			testWorker("A", "a@x", "Mon 09:00-12:00", false),
		}
		run.fairFill(regular, 0)
		assert.Equal(t, 3, assignedHours(run.grid, "a@x"))
	})

	t.Run("empty pool is a no-op", func(t *testing.T) {
		run := newAssignmentRun(defaultTestGrid(), opts)
		assert.Zero(t, run.fairFill(nil, 0))
	})
}

func TestPartitionWorkers(t *testing.T) {
	grid := defaultTestGrid()
	suspended := testWorker("S", "s@x", "Mon 09:00-17:00", false)
	suspended.Suspended = true
	pool := []models.Worker{
		testWorker("WS", "ws@x", "Mon 09:00-17:00", true),
		testWorker("R", "r@x", "Tue 09:00-17:00", false),
		suspended,
		testWorker("Gone", "gone@x", "Sat 09:00-17:00", false),
	}
	workStudy, regular := partitionWorkers(pool, grid)
	require.Len(t, workStudy, 1)
	require.Len(t, regular, 1)
	assert.Equal(t, "ws@x", workStudy[0].Email)
	assert.Equal(t, "r@x", regular[0].Email)
}

func TestLongestAvailableRun(t *testing.T) {
	grid := defaultTestGrid()
	w := testWorker("A", "a@x", "Mon 09:00-12:00, Mon 13:00-17:00", false)
	assert.Equal(t, 4, longestAvailableRun(w, grid))

	all := testWorker("B", "b@x", "Wed 09:00-17:00", false)
	assert.Equal(t, 8, longestAvailableRun(all, grid))
}
