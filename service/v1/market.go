package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dropradar/DropRadar/logger/xzap"
	"github.com/dropradar/DropRadar/service/svc"
	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

const (
	coingeckoMarketsURL = "https://api.coingecko.com/api/v3/coins/markets"
	marketFetchTimeout  = 10 * time.Second
	marketFetchPerPage  = 20
	marketConvertLimit  = 10
)

type marketEntry struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	MarketCap    decimal.Decimal `json:"market_cap"`
}

// FetchMarketAirdrops pulls the CoinGecko airdrop category and fabricates
// campaign records from the top entries. Best effort only: callers log
// failures and move on.
func FetchMarketAirdrops(ctx context.Context, s *svc.ServerCtx) ([]*airdrop.Airdrop, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("category", "airdrop")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprint(marketFetchPerPage))
	params.Set("page", "1")

	reqCtx, cancel := context.WithTimeout(ctx, marketFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, coingeckoMarketsURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext failed")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "coingecko request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("coingecko responded %d", resp.StatusCode)
	}

	var entries []marketEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode coingecko response failed")
	}

	if len(entries) > marketConvertLimit {
		entries = entries[:marketConvertLimit]
	}

	now := s.Now()
	drops := make([]*airdrop.Airdrop, 0, len(entries))
	for _, e := range entries {
		drops = append(drops, marketEntryToAirdrop(e, now))
	}
	return drops, nil
}

func marketEntryToAirdrop(e marketEntry, now time.Time) *airdrop.Airdrop {
	id := uuid.NewString()
	symbol := strings.ToUpper(e.Symbol)
	deadline := now.AddDate(0, 0, 30)

	return &airdrop.Airdrop{
		ID:          id,
		Name:        e.Name + " Airdrop",
		Description: fmt.Sprintf("Potential airdrop opportunity for %s token holders. Tracked price: $%s.", e.Name, e.CurrentPrice.StringFixed(2)),
		Blockchain:  "ethereum",
		Status:      airdrop.AirdropStatusActive,
		RewardToken: symbol,
		OfficialURL: "https://www.coingecko.com/en/coins/" + e.ID,
		LogoURL:     e.Image,
		Deadline:    &deadline,
		Tasks: []airdrop.AirdropTask{
			{
				ID:          uuid.NewString(),
				AirdropID:   id,
				Title:       "Follow Official Twitter",
				Description: "Follow the official Twitter account",
				Type:        airdrop.TaskTypeSocial,
				URL:         "https://twitter.com/" + strings.ToLower(e.Symbol),
				Required:    true,
			},
			{
				ID:          uuid.NewString(),
				AirdropID:   id,
				Title:       "Join Telegram",
				Description: "Join the official Telegram community",
				Type:        airdrop.TaskTypeSocial,
				Required:    true,
			},
			{
				ID:          uuid.NewString(),
				AirdropID:   id,
				Title:       "Hold Tokens",
				Description: "Hold minimum required tokens in wallet",
				Type:        airdrop.TaskTypeStaking,
				Required:    true,
			},
		},
		Requirements: []string{
			"Have an Ethereum wallet",
			"Follow social media accounts",
			"Hold minimum token amount",
		},
		SocialLinks: map[string]string{
			"twitter": "https://twitter.com/" + strings.ToLower(e.Symbol),
		},
		ReputationScore: 75,
	}
}

// RefreshMarketAirdrops 拉取行情数据并落库，重名记录跳过
func RefreshMarketAirdrops(ctx context.Context, s *svc.ServerCtx) {
	drops, err := FetchMarketAirdrops(ctx, s)
	if err != nil {
		xzap.WithContext(ctx).Error("fetch market airdrops failed", zap.Error(err))
		return
	}
	if len(drops) == 0 {
		return
	}
	if err := s.Dao.BatchCreateAirdrops(ctx, drops); err != nil {
		xzap.WithContext(ctx).Error("store market airdrops failed", zap.Error(err))
		return
	}
	xzap.WithContext(ctx).Info("market airdrops refreshed", zap.Int("count", len(drops)))
}

// StartMarketScheduler 按配置的cron表达式定时刷新行情空投
func StartMarketScheduler(s *svc.ServerCtx) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(s.C.Market.Cron, func() {
		RefreshMarketAirdrops(context.Background(), s)
	})
	if err != nil {
		return nil, errors.Wrap(err, "cron.AddFunc failed")
	}
	c.Start()
	return c, nil
}
