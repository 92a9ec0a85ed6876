package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/dropradar/DropRadar/service/svc"
	"github.com/dropradar/DropRadar/stores/gdb/user"
)

const (
	checkinBasePoints = 10
	maxStreakBonus    = 50
)

type CheckinResult struct {
	AlreadyCheckedIn bool `json:"-"`
	PointsEarned     int  `json:"points_earned"`
	TotalPoints      int  `json:"total_points"`
	Streak           int  `json:"streak"`
	StreakBonus      int  `json:"streak_bonus"`
}

// ApplyCheckin runs one check-in transition against the UTC calendar date
// of now. Same day: no mutation, AlreadyCheckedIn result with current
// totals. Yesterday: streak continues. Anything else (never checked in,
// gap of two or more days, clock in the future): streak restarts at 1.
func ApplyCheckin(u *user.User, now time.Time) CheckinResult {
	if u.LastCheckin != nil && sameUTCDate(*u.LastCheckin, now) {
		return CheckinResult{
			AlreadyCheckedIn: true,
			TotalPoints:      u.TotalPoints,
			Streak:           u.DailyStreak,
		}
	}

	if u.LastCheckin != nil && sameUTCDate(*u.LastCheckin, now.AddDate(0, 0, -1)) {
		u.DailyStreak++
	} else {
		u.DailyStreak = 1
	}

	bonus := u.DailyStreak * 2
	if bonus > maxStreakBonus {
		bonus = maxStreakBonus
	}
	earned := checkinBasePoints + bonus
	u.TotalPoints += earned
	checkin := now
	u.LastCheckin = &checkin

	return CheckinResult{
		PointsEarned: earned,
		TotalPoints:  u.TotalPoints,
		Streak:       u.DailyStreak,
		StreakBonus:  bonus,
	}
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DailyCheckin 每日签到。用户不存在时先按默认值创建档案再签到。
func DailyCheckin(ctx context.Context, s *svc.ServerCtx, userID string) (*user.User, CheckinResult, error) {
	u, err := GetOrCreateUser(ctx, s, userID)
	if err != nil {
		return nil, CheckinResult{}, err
	}

	res := ApplyCheckin(u, s.Now())
	if res.AlreadyCheckedIn {
		return u, res, nil
	}

	if err := s.Dao.SaveUser(ctx, u); err != nil {
		return nil, CheckinResult{}, errors.Wrap(err, "Dao.SaveUser failed")
	}
	return u, res, nil
}

// GetOrCreateUser 获取用户档案，首次访问时创建
func GetOrCreateUser(ctx context.Context, s *svc.ServerCtx, userID string) (*user.User, error) {
	u, err := s.Dao.GetUserByID(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "Dao.GetUserByID failed")
	}

	u = &user.User{
		ID:              userID,
		WalletAddresses: []string{},
		Preferences:     user.DefaultPreferences(),
	}
	if err := s.Dao.CreateUser(ctx, u); err != nil {
		return nil, errors.Wrap(err, "Dao.CreateUser failed")
	}
	return u, nil
}
