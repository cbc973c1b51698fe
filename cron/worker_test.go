package cron

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterly/services/roster"
)

func TestGenerateTaskPayloadRoundTrip(t *testing.T) {
	in := GenerateTaskPayload{
		Options: roster.GenerateOptions{
			WorkplaceID:        "venue-1",
			MaxWorkersPerShift: 3,
			ShiftSizes:         []int{5, 4, 3, 2},
		},
		WorkerIDs: []string{"w1", "w2"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out GenerateTaskPayload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	// Omitted worker ids stay omitted so the worker falls back to the pool.
	raw, err = json.Marshal(GenerateTaskPayload{})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "workerIds")
}
