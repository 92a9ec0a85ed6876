package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/dropradar/DropRadar/api/v1"
	"github.com/dropradar/DropRadar/service/svc"
)

// NewRouter 初始化gin引擎和路由表
func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")

	api.GET("/airdrops", v1.GetAirdrops(svcCtx))
	api.GET("/airdrops/:airdropId", v1.GetAirdropDetail(svcCtx))
	api.GET("/blockchains", v1.GetBlockchains(svcCtx))

	api.POST("/eligibility/check", v1.CheckEligibility(svcCtx))

	users := api.Group("/users")
	users.GET("/:id", v1.GetUser(svcCtx))
	users.POST("/:id/checkin", v1.DailyCheckin(svcCtx))
	users.GET("/:id/airdrops", v1.GetUserAirdrops(svcCtx))
	users.POST("/:id/airdrops/:airdropId/track", v1.TrackAirdrop(svcCtx))
	users.POST("/:id/airdrops/:airdropId/tasks/:taskId/complete", v1.CompleteTask(svcCtx))

	return r
}
