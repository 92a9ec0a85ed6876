package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

func newTrackingRecord() *airdrop.UserAirdropStatus {
	return &airdrop.UserAirdropStatus{
		ID:             "st-1",
		UserID:         "user-1",
		AirdropID:      "drop-1",
		Status:         airdrop.TrackStatusNotStarted,
		CompletedTasks: []string{},
	}
}

func TestApplyTaskCompletionThreeTaskScenario(t *testing.T) {
	st := newTrackingRecord()

	pct := ApplyTaskCompletion(st, 3, "task-a")
	require.Equal(t, 33, pct)
	require.Equal(t, airdrop.TrackStatusInProgress, st.Status)

	pct = ApplyTaskCompletion(st, 3, "task-b")
	require.Equal(t, 66, pct)
	require.Equal(t, airdrop.TrackStatusInProgress, st.Status)

	pct = ApplyTaskCompletion(st, 3, "task-c")
	require.Equal(t, 100, pct)
	require.Equal(t, airdrop.TrackStatusCompleted, st.Status)
	require.ElementsMatch(t, []string{"task-a", "task-b", "task-c"}, st.CompletedTasks)
}

func TestApplyTaskCompletionIdempotent(t *testing.T) {
	st := newTrackingRecord()

	first := ApplyTaskCompletion(st, 3, "task-a")
	second := ApplyTaskCompletion(st, 3, "task-a")

	assert.Equal(t, first, second)
	assert.Len(t, st.CompletedTasks, 1)
	assert.Equal(t, airdrop.TrackStatusInProgress, st.Status)
}

func TestApplyTaskCompletionMonotonic(t *testing.T) {
	st := newTrackingRecord()

	prev := 0
	for _, taskID := range []string{"t1", "t1", "t2", "t3", "t3", "t4"} {
		pct := ApplyTaskCompletion(st, 4, taskID)
		assert.GreaterOrEqual(t, pct, prev)
		prev = pct
	}
	assert.Equal(t, 100, prev)
}

func TestApplyTaskCompletionZeroTaskCampaign(t *testing.T) {
	st := newTrackingRecord()

	pct := ApplyTaskCompletion(st, 0, "task-a")

	assert.Equal(t, 0, pct)
	assert.Equal(t, 0, st.ProgressPercentage)
	// status is left alone when the campaign has no tasks
	assert.Equal(t, airdrop.TrackStatusNotStarted, st.Status)
}

func TestApplyTaskCompletionUnknownIDsCappedAt100(t *testing.T) {
	st := newTrackingRecord()

	ApplyTaskCompletion(st, 2, "t1")
	ApplyTaskCompletion(st, 2, "t2")
	// stale id from an edited task list is accepted but cannot overflow
	pct := ApplyTaskCompletion(st, 2, "t3")

	assert.Equal(t, 100, pct)
	assert.Equal(t, 100, st.ProgressPercentage)
	assert.Equal(t, airdrop.TrackStatusCompleted, st.Status)
}

func TestApplyTaskCompletionBoundary(t *testing.T) {
	st := newTrackingRecord()

	ApplyTaskCompletion(st, 2, "t1")
	require.NotEqual(t, airdrop.TrackStatusCompleted, st.Status)

	ApplyTaskCompletion(st, 2, "t2")
	require.Equal(t, 100, st.ProgressPercentage)
	require.Equal(t, airdrop.TrackStatusCompleted, st.Status)
}
