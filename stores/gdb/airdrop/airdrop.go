package airdrop

import "time"

type AirdropStatus string

const (
	AirdropStatusActive   AirdropStatus = "active"
	AirdropStatusUpcoming AirdropStatus = "upcoming"
	AirdropStatusExpired  AirdropStatus = "expired"
	AirdropStatusClaimed  AirdropStatus = "claimed"
)

type TaskType string

const (
	TaskTypeSocial   TaskType = "social"
	TaskTypeStaking  TaskType = "staking"
	TaskTypeSnapshot TaskType = "snapshot"
	TaskTypeTrading  TaskType = "trading"
	TaskTypeOther    TaskType = "other"
)

// Airdrop 空投活动
type Airdrop struct {
	ID              string            `gorm:"primaryKey;size:36" json:"id"`
	Name            string            `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Description     string            `gorm:"type:text" json:"description"`
	Blockchain      string            `gorm:"size:20;not null;index" json:"blockchain"`
	Status          AirdropStatus     `gorm:"size:20;not null;index;default:active" json:"status"`
	RewardAmount    string            `gorm:"size:100" json:"reward_amount,omitempty"`
	RewardToken     string            `gorm:"size:20" json:"reward_token,omitempty"`
	Deadline        *time.Time        `json:"deadline,omitempty"`
	SnapshotDate    *time.Time        `json:"snapshot_date,omitempty"`
	ListingDate     *time.Time        `json:"listing_date,omitempty"`
	OfficialURL     string            `gorm:"size:255" json:"official_url"`
	LogoURL         string            `gorm:"size:255" json:"logo_url,omitempty"`
	Tasks           []AirdropTask     `gorm:"foreignKey:AirdropID" json:"tasks"`
	Requirements    []string          `gorm:"serializer:json;type:text" json:"requirements"`
	SocialLinks     map[string]string `gorm:"serializer:json;type:text" json:"social_links"`
	ReputationScore int               `gorm:"default:0" json:"reputation_score"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Airdrop) TableName() string {
	return "airdrops"
}

// AirdropTask 空投任务，task id在同一个活动内唯一
type AirdropTask struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	AirdropID   string   `gorm:"size:36;not null;index" json:"airdrop_id"`
	Title       string   `gorm:"size:200;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Type        TaskType `gorm:"size:20;not null" json:"type"`
	URL         string   `gorm:"size:255" json:"url,omitempty"`
	Required    bool     `gorm:"default:true" json:"required"`
}

func (AirdropTask) TableName() string {
	return "airdrop_tasks"
}
