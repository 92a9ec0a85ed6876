package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/service/svc"
	service "github.com/dropradar/DropRadar/service/v1"
	types "github.com/dropradar/DropRadar/types/v1"
	"github.com/dropradar/DropRadar/xhttp"
)

// 获取用户档案，首次访问时创建
func GetUser(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("id")
		if userID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetOrCreateUser(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 每日签到
func DailyCheckin(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("id")
		if userID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		u, res, err := service.DailyCheckin(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		if res.AlreadyCheckedIn {
			xhttp.OkJson(c, types.AlreadyCheckedInResp{
				Message: "Already checked in today",
				Points:  u.TotalPoints,
				Streak:  u.DailyStreak,
			})
			return
		}

		xhttp.OkJson(c, types.CheckinResp{
			Message:      "Check-in successful!",
			PointsEarned: res.PointsEarned,
			TotalPoints:  res.TotalPoints,
			Streak:       res.Streak,
			StreakBonus:  res.StreakBonus,
		})
	}
}

// 获取用户跟踪的空投进度列表
func GetUserAirdrops(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("id")
		if userID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetUserAirdrops(c.Request.Context(), svcCtx, userID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 开始跟踪空投，重复请求按"已在跟踪"处理
func TrackAirdrop(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("id")
		airdropID := c.Params.ByName("airdropId")
		if userID == "" || airdropID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		st, created, err := service.TrackAirdrop(c.Request.Context(), svcCtx, userID, airdropID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		msg := "Airdrop tracking started"
		if !created {
			msg = "Already tracking this airdrop"
		}
		xhttp.OkJson(c, types.TrackAirdropResp{Message: msg, Status: st})
	}
}

// 标记任务完成
func CompleteTask(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Params.ByName("id")
		airdropID := c.Params.ByName("airdropId")
		taskID := c.Params.ByName("taskId")
		if userID == "" || airdropID == "" || taskID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		st, progress, err := service.CompleteTask(c.Request.Context(), svcCtx, userID, airdropID, taskID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, types.CompleteTaskResp{
			Message:  "Task completed",
			Progress: progress,
			Status:   st,
		})
	}
}
