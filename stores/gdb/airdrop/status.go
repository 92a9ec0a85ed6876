package airdrop

import "time"

type TrackStatus string

const (
	TrackStatusNotStarted TrackStatus = "not_started"
	TrackStatusInProgress TrackStatus = "in_progress"
	TrackStatusCompleted  TrackStatus = "completed"
)

// EligibilityDetail 资格检查明细，每项检查一个字段
type EligibilityDetail struct {
	WalletAddress         string    `json:"wallet_address"`
	Blockchain            string    `json:"blockchain"`
	CheckDate             time.Time `json:"check_date"`
	AddressFormatValid    bool      `json:"address_format_valid"`
	HasTransactionHistory bool      `json:"has_transaction_history"`
	MeetsMinimumBalance   bool      `json:"meets_minimum_balance"`
	ActiveBeforeSnapshot  bool      `json:"active_before_snapshot"`
	EstimatedReward       string    `json:"estimated_reward"`
}

// UserAirdropStatus 用户对单个空投的跟踪进度，(user_id, airdrop_id)唯一
type UserAirdropStatus struct {
	ID                 string             `gorm:"primaryKey;size:36" json:"id"`
	UserID             string             `gorm:"size:64;not null;uniqueIndex:idx_user_airdrop" json:"user_id"`
	AirdropID          string             `gorm:"size:36;not null;uniqueIndex:idx_user_airdrop" json:"airdrop_id"`
	Status             TrackStatus        `gorm:"size:20;not null;default:not_started" json:"status"`
	CompletedTasks     []string           `gorm:"serializer:json;type:text" json:"completed_tasks"`
	ProgressPercentage int                `gorm:"default:0" json:"progress_percentage"`
	WalletAddress      string             `gorm:"size:100" json:"wallet_address,omitempty"`
	EligibilityChecked bool               `gorm:"default:false" json:"eligibility_checked"`
	IsEligible         *bool              `json:"is_eligible,omitempty"`
	Eligibility        *EligibilityDetail `gorm:"serializer:json;type:text" json:"eligibility_details,omitempty"`
	ReminderEnabled    bool               `gorm:"default:true" json:"reminder_enabled"`
	Notes              string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (UserAirdropStatus) TableName() string {
	return "user_airdrop_statuses"
}
