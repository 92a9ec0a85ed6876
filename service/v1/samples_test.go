package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleAirdropsAreWellFormed(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	drops := SampleAirdrops(now)
	require.Len(t, drops, 3)

	names := map[string]bool{}
	for _, drop := range drops {
		assert.False(t, names[drop.Name], "duplicate campaign name %s", drop.Name)
		names[drop.Name] = true

		assert.NotEmpty(t, drop.ID)
		assert.NotEmpty(t, drop.Blockchain)
		require.NotEmpty(t, drop.Tasks)

		taskIDs := map[string]bool{}
		for _, task := range drop.Tasks {
			assert.Equal(t, drop.ID, task.AirdropID)
			assert.False(t, taskIDs[task.ID], "duplicate task id in %s", drop.Name)
			taskIDs[task.ID] = true
		}
	}
}

func TestSampleAirdropDatesAreRelativeToNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	drops := SampleAirdrops(now)

	for _, drop := range drops {
		require.NotNil(t, drop.Deadline, drop.Name)
		assert.True(t, drop.Deadline.After(now), drop.Name)
	}
}
