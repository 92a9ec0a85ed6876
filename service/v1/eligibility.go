package service

import (
	"context"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/logger/xzap"
	"github.com/dropradar/DropRadar/service/svc"
	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

type EligibilityResult struct {
	AirdropID     string                    `json:"airdrop_id"`
	WalletAddress string                    `json:"wallet_address"`
	IsEligible    bool                      `json:"is_eligible"`
	Details       airdrop.EligibilityDetail `json:"details"`
	CheckedAt     time.Time                 `json:"checked_at"`
}

// chains whose addresses are 0x-hex and can be shape-checked
var evmChains = map[string]bool{
	"ethereum":  true,
	"bsc":       true,
	"polygon":   true,
	"arbitrum":  true,
	"optimism":  true,
	"avalanche": true,
	"fantom":    true,
}

// BuildEligibility is a deterministic placeholder, not an on-chain lookup:
// wallets whose address length is a multiple of 3 come back ineligible.
// The detail struct is typed so a real checker only has to replace this
// one function.
func BuildEligibility(drop *airdrop.Airdrop, walletAddress string, now time.Time) EligibilityResult {
	eligible := len(walletAddress)%3 != 0

	reward := drop.RewardAmount
	if reward == "" {
		reward = "Unknown"
	}

	detail := airdrop.EligibilityDetail{
		WalletAddress:         walletAddress,
		Blockchain:            drop.Blockchain,
		CheckDate:             now,
		AddressFormatValid:    !evmChains[drop.Blockchain] || ethcommon.IsHexAddress(walletAddress),
		HasTransactionHistory: eligible,
		MeetsMinimumBalance:   eligible,
		ActiveBeforeSnapshot:  eligible,
		EstimatedReward:       reward,
	}

	return EligibilityResult{
		AirdropID:     drop.ID,
		WalletAddress: walletAddress,
		IsEligible:    eligible,
		Details:       detail,
		CheckedAt:     now,
	}
}

// CheckEligibility 检查钱包对某个空投的资格。userID可选，给出且已有
// 跟踪记录时把检查结果写回该记录。
func CheckEligibility(ctx context.Context, s *svc.ServerCtx, airdropID, walletAddress, userID string) (*EligibilityResult, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, errcode.NewInvalidParamsErr("invalid wallet address")
	}

	drop, err := s.Dao.GetAirdropByID(ctx, airdropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("airdrop not found")
		}
		return nil, errors.Wrap(err, "Dao.GetAirdropByID failed")
	}

	res := BuildEligibility(drop, walletAddress, s.Now())

	if userID != "" {
		if st, err := s.Dao.GetUserAirdropStatus(ctx, userID, airdropID); err == nil {
			st.WalletAddress = walletAddress
			st.EligibilityChecked = true
			eligible := res.IsEligible
			st.IsEligible = &eligible
			detail := res.Details
			st.Eligibility = &detail
			if err := s.Dao.SaveUserAirdropStatus(ctx, st); err != nil {
				xzap.WithContext(ctx).Error("save eligibility result failed", zap.Error(err))
			}
		}
	}

	return &res, nil
}
