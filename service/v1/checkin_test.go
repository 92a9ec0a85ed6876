package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropradar/DropRadar/stores/gdb/user"
)

var checkinNow = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

func profileWithLastCheckin(streak, points int, last *time.Time) *user.User {
	return &user.User{
		ID:          "user-1",
		DailyStreak: streak,
		TotalPoints: points,
		LastCheckin: last,
		Preferences: user.DefaultPreferences(),
	}
}

func TestApplyCheckinFirstEver(t *testing.T) {
	u := profileWithLastCheckin(0, 0, nil)

	res := ApplyCheckin(u, checkinNow)

	require.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 2, res.StreakBonus)
	assert.Equal(t, 12, res.PointsEarned)
	assert.Equal(t, 12, res.TotalPoints)
	require.NotNil(t, u.LastCheckin)
	assert.True(t, u.LastCheckin.Equal(checkinNow))
}

func TestApplyCheckinContinuesStreakFromYesterday(t *testing.T) {
	yesterday := checkinNow.AddDate(0, 0, -1)
	u := profileWithLastCheckin(5, 100, &yesterday)

	res := ApplyCheckin(u, checkinNow)

	require.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, 6, res.Streak)
	assert.Equal(t, 12, res.StreakBonus)
	assert.Equal(t, 22, res.PointsEarned)
	assert.Equal(t, 122, res.TotalPoints)
}

func TestApplyCheckinResetsAfterGap(t *testing.T) {
	threeDaysAgo := checkinNow.AddDate(0, 0, -3)
	u := profileWithLastCheckin(7, 200, &threeDaysAgo)

	res := ApplyCheckin(u, checkinNow)

	require.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 2, res.StreakBonus)
	assert.Equal(t, 12, res.PointsEarned)
	assert.Equal(t, 212, res.TotalPoints)
}

func TestApplyCheckinResetsOnFutureTimestamp(t *testing.T) {
	future := checkinNow.AddDate(0, 0, 2)
	u := profileWithLastCheckin(9, 300, &future)

	res := ApplyCheckin(u, checkinNow)

	require.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, 1, res.Streak)
}

func TestApplyCheckinRejectsSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 10, 0, 0, time.UTC)
	u := profileWithLastCheckin(3, 50, &morning)

	res := ApplyCheckin(u, checkinNow)

	require.True(t, res.AlreadyCheckedIn)
	assert.Zero(t, res.PointsEarned)
	assert.Equal(t, 50, res.TotalPoints)
	assert.Equal(t, 3, res.Streak)
	// no mutation on the rejected branch
	assert.Equal(t, 3, u.DailyStreak)
	assert.Equal(t, 50, u.TotalPoints)
	assert.True(t, u.LastCheckin.Equal(morning))
}

func TestApplyCheckinStreakBonusCap(t *testing.T) {
	yesterday := checkinNow.AddDate(0, 0, -1)
	u := profileWithLastCheckin(24, 1000, &yesterday)

	res := ApplyCheckin(u, checkinNow)

	assert.Equal(t, 25, res.Streak)
	assert.Equal(t, 50, res.StreakBonus)
	assert.Equal(t, 60, res.PointsEarned)
	assert.Equal(t, 1060, res.TotalPoints)

	// every following day stays at the cap
	res = ApplyCheckin(u, checkinNow.AddDate(0, 0, 1))
	assert.Equal(t, 26, res.Streak)
	assert.Equal(t, 50, res.StreakBonus)
	assert.Equal(t, 60, res.PointsEarned)
}

func TestApplyCheckinUsesUTCCalendarDates(t *testing.T) {
	lateNight := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	u := profileWithLastCheckin(2, 40, &lateNight)

	// forty minutes later, but on the next UTC day
	res := ApplyCheckin(u, time.Date(2025, 3, 10, 0, 10, 0, 0, time.UTC))

	require.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, 3, res.Streak)
}

func TestApplyCheckinTwiceSameDayLeavesTotalsUnchanged(t *testing.T) {
	u := profileWithLastCheckin(0, 0, nil)

	first := ApplyCheckin(u, checkinNow)
	require.False(t, first.AlreadyCheckedIn)

	second := ApplyCheckin(u, checkinNow.Add(2*time.Hour))
	require.True(t, second.AlreadyCheckedIn)
	assert.Equal(t, first.TotalPoints, u.TotalPoints)
	assert.Equal(t, first.Streak, u.DailyStreak)
}
