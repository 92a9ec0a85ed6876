package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/logger/xzap"
	"github.com/dropradar/DropRadar/service/svc"
	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

// ListAirdrops 按条件查询空投列表。库里还没有匹配数据时先写入示例活动
// 再查一次，保证新环境第一次请求就有内容。
func ListAirdrops(ctx context.Context, s *svc.ServerCtx, blockchain, status string, limit int) ([]airdrop.Airdrop, error) {
	drops, err := s.Dao.ListAirdrops(ctx, blockchain, status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "Dao.ListAirdrops failed")
	}
	if len(drops) > 0 {
		return drops, nil
	}

	if err := s.Dao.BatchCreateAirdrops(ctx, SampleAirdrops(s.Now())); err != nil {
		return nil, errors.Wrap(err, "Dao.BatchCreateAirdrops failed")
	}
	xzap.WithContext(ctx).Info("seeded sample airdrops", zap.String("blockchain", blockchain), zap.String("status", status))

	drops, err = s.Dao.ListAirdrops(ctx, blockchain, status, limit)
	if err != nil {
		return nil, errors.Wrap(err, "Dao.ListAirdrops failed")
	}
	return drops, nil
}

func GetAirdrop(ctx context.Context, s *svc.ServerCtx, airdropID string) (*airdrop.Airdrop, error) {
	drop, err := s.Dao.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("airdrop not found")
		}
		return nil, errors.Wrap(err, "Dao.GetAirdropByID failed")
	}
	return drop, nil
}
