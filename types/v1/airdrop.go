package types

import (
	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

// EligibilityCheckReq 资格检查请求，user_id可选
type EligibilityCheckReq struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	AirdropID     string `json:"airdrop_id" binding:"required"`
	UserID        string `json:"user_id"`
}

type TrackAirdropResp struct {
	Message string                     `json:"message"`
	Status  *airdrop.UserAirdropStatus `json:"status"`
}

type CompleteTaskResp struct {
	Message  string                     `json:"message"`
	Progress int                        `json:"progress"`
	Status   *airdrop.UserAirdropStatus `json:"status"`
}

type Blockchain struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
