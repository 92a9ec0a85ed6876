package dao

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

func (d *Dao) GetAirdropByID(c context.Context, airdropID string) (*airdrop.Airdrop, error) {
	var drop airdrop.Airdrop
	err := d.DB.WithContext(c).
		Preload("Tasks").Where("id = ?", airdropID).First(&drop).Error
	if err != nil {
		return nil, err
	}
	return &drop, nil
}

// ListAirdrops 按链和状态过滤，按创建时间倒序
func (d *Dao) ListAirdrops(c context.Context, blockchain string, status string, limit int) ([]airdrop.Airdrop, error) {
	var drops []airdrop.Airdrop
	q := d.DB.WithContext(c).Preload("Tasks").Order("created_at desc").Limit(limit)
	if blockchain != "" {
		q = q.Where("blockchain = ?", blockchain)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&drops).Error
	return drops, err
}

// BatchCreateAirdrops 批量插入，重名的记录跳过
func (d *Dao) BatchCreateAirdrops(c context.Context, drops []*airdrop.Airdrop) error {
	return d.DB.WithContext(c).Clauses(clause.OnConflict{
		DoNothing: true,
	}).CreateInBatches(drops, 100).Error
}

func (d *Dao) GetUserAirdropStatus(c context.Context, userID, airdropID string) (*airdrop.UserAirdropStatus, error) {
	var st airdrop.UserAirdropStatus
	err := d.DB.WithContext(c).
		Where("user_id = ? and airdrop_id = ?", userID, airdropID).First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (d *Dao) ListUserAirdropStatuses(c context.Context, userID string) ([]airdrop.UserAirdropStatus, error) {
	var statuses []airdrop.UserAirdropStatus
	err := d.DB.WithContext(c).
		Where("user_id = ?", userID).Find(&statuses).Error
	return statuses, err
}

func (d *Dao) CreateUserAirdropStatus(c context.Context, st *airdrop.UserAirdropStatus) error {
	return d.DB.WithContext(c).Create(st).Error
}

func (d *Dao) SaveUserAirdropStatus(c context.Context, st *airdrop.UserAirdropStatus) error {
	return d.DB.WithContext(c).Save(st).Error
}
