package types

type CheckinResp struct {
	Message      string `json:"message"`
	PointsEarned int    `json:"points_earned"`
	TotalPoints  int    `json:"total_points"`
	Streak       int    `json:"streak"`
	StreakBonus  int    `json:"streak_bonus"`
}

// AlreadyCheckedInResp 当天重复签到的应答，不算错误
type AlreadyCheckedInResp struct {
	Message string `json:"message"`
	Points  int    `json:"points"`
	Streak  int    `json:"streak"`
}
