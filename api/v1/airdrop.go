package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dropradar/DropRadar/errcode"
	"github.com/dropradar/DropRadar/service/svc"
	service "github.com/dropradar/DropRadar/service/v1"
	types "github.com/dropradar/DropRadar/types/v1"
	"github.com/dropradar/DropRadar/xhttp"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// 获取空投列表，支持按链和状态过滤
func GetAirdrops(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		blockchain := c.Query("blockchain")
		status := c.Query("status")

		limit := defaultListLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > maxListLimit {
				xhttp.Error(c, errcode.ErrInvalidParams)
				return
			}
			limit = parsed
		}

		res, err := service.ListAirdrops(c.Request.Context(), svcCtx, blockchain, status, limit)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 获取单个空投详情
func GetAirdropDetail(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		airdropID := c.Params.ByName("airdropId")
		if airdropID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetAirdrop(c.Request.Context(), svcCtx, airdropID)
		if err != nil {
			xhttp.Error(c, err)
			return
		}

		xhttp.OkJson(c, res)
	}
}

// 获取支持的区块链列表
func GetBlockchains(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		chains := make([]types.Blockchain, 0, len(svcCtx.C.ChainSupported))
		for _, chain := range svcCtx.C.ChainSupported {
			chains = append(chains, types.Blockchain{
				ID:     chain.ID,
				Name:   chain.Name,
				Symbol: chain.Symbol,
			})
		}
		xhttp.OkJson(c, chains)
	}
}
