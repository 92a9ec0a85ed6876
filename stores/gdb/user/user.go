package user

import "time"

// Preferences 用户偏好设置
type Preferences struct {
	Theme                string   `json:"theme"`
	Notifications        bool     `json:"notifications"`
	PreferredBlockchains []string `json:"preferred_blockchains"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                "dark",
		Notifications:        true,
		PreferredBlockchains: []string{"ethereum", "bsc", "solana"},
	}
}

// User 用户档案，首次访问时惰性创建
type User struct {
	ID              string      `gorm:"primaryKey;size:64" json:"id"`
	WalletAddresses []string    `gorm:"serializer:json;type:text" json:"wallet_addresses"`
	DailyStreak     int         `gorm:"default:0" json:"daily_streak"`
	TotalPoints     int         `gorm:"default:0" json:"total_points"`
	LastCheckin     *time.Time  `json:"last_checkin,omitempty"`
	Preferences     Preferences `gorm:"serializer:json;type:text" json:"preferences"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
