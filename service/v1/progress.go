package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/service/svc"
	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

// ApplyTaskCompletion adds taskID to the completed set and recomputes
// progress. Adding an already-completed task is a no-op, not an error.
// Task ids are not checked against the campaign's task list and the
// required flag does not change the denominator; the percentage is capped
// at 100 so stale ids cannot push the record out of range. A zero-task
// campaign stays at 0 and keeps its current status.
func ApplyTaskCompletion(st *airdrop.UserAirdropStatus, totalTasks int, taskID string) int {
	if !slices.Contains(st.CompletedTasks, taskID) {
		st.CompletedTasks = append(st.CompletedTasks, taskID)
	}

	if totalTasks <= 0 {
		st.ProgressPercentage = 0
		return 0
	}

	pct := len(st.CompletedTasks) * 100 / totalTasks
	if pct > 100 {
		pct = 100
	}
	st.ProgressPercentage = pct

	switch {
	case pct == 100:
		st.Status = airdrop.TrackStatusCompleted
	case pct > 0:
		st.Status = airdrop.TrackStatusInProgress
	}
	return pct
}

// CompleteTask 标记任务完成并重新计算进度
func CompleteTask(ctx context.Context, s *svc.ServerCtx, userID, airdropID, taskID string) (*airdrop.UserAirdropStatus, int, error) {
	st, err := s.Dao.GetUserAirdropStatus(ctx, userID, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errcode.NewNotFoundErr("airdrop tracking not found")
		}
		return nil, 0, errors.Wrap(err, "Dao.GetUserAirdropStatus failed")
	}

	drop, err := s.Dao.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errcode.NewNotFoundErr("airdrop not found")
		}
		return nil, 0, errors.Wrap(err, "Dao.GetAirdropByID failed")
	}

	pct := ApplyTaskCompletion(st, len(drop.Tasks), taskID)

	if err := s.Dao.SaveUserAirdropStatus(ctx, st); err != nil {
		return nil, 0, errors.Wrap(err, "Dao.SaveUserAirdropStatus failed")
	}
	return st, pct, nil
}

// TrackAirdrop 开始跟踪一个空投。已在跟踪时原样返回现有记录，created=false。
func TrackAirdrop(ctx context.Context, s *svc.ServerCtx, userID, airdropID string) (*airdrop.UserAirdropStatus, bool, error) {
	if _, err := s.Dao.GetAirdropByID(ctx, airdropID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errcode.NewNotFoundErr("airdrop not found")
		}
		return nil, false, errors.Wrap(err, "Dao.GetAirdropByID failed")
	}

	existing, err := s.Dao.GetUserAirdropStatus(ctx, userID, airdropID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, errors.Wrap(err, "Dao.GetUserAirdropStatus failed")
	}

	st := &airdrop.UserAirdropStatus{
		ID:              uuid.NewString(),
		UserID:          userID,
		AirdropID:       airdropID,
		Status:          airdrop.TrackStatusNotStarted,
		CompletedTasks:  []string{},
		ReminderEnabled: true,
	}
	if err := s.Dao.CreateUserAirdropStatus(ctx, st); err != nil {
		return nil, false, errors.Wrap(err, "Dao.CreateUserAirdropStatus failed")
	}
	return st, true, nil
}

// GetUserAirdrops 获取用户跟踪的全部空投进度
func GetUserAirdrops(ctx context.Context, s *svc.ServerCtx, userID string) ([]airdrop.UserAirdropStatus, error) {
	statuses, err := s.Dao.ListUserAirdropStatuses(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "Dao.ListUserAirdropStatuses failed")
	}
	return statuses, nil
}
