package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/kit/validator"
	"github.com/dropradar/DropRadar/service/svc"
	service "github.com/dropradar/DropRadar/service/v1"
	types "github.com/dropradar/DropRadar/types/v1"
	"github.com/dropradar/DropRadar/xhttp"
)

// 检查钱包对某个空投的资格（占位实现，非链上查询）
func CheckEligibility(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.EligibilityCheckReq{}
		if err := c.ShouldBindBodyWithJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr("invalid wallet address"))
			return
		}

		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CheckEligibility(c.Request.Context(), svcCtx, req.AirdropID, req.WalletAddress, req.UserID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}
