package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

// SampleAirdrops builds the built-in demo campaigns used to seed an empty
// database. Task ids are fresh uuids; everything else is static content.
func SampleAirdrops(now time.Time) []*airdrop.Airdrop {
	layerZeroID := uuid.NewString()
	arbitrumID := uuid.NewString()
	solanaID := uuid.NewString()

	deadline45 := now.AddDate(0, 0, 45)
	snapshot30 := now.AddDate(0, 0, 30)
	listing60 := now.AddDate(0, 0, 60)
	deadline15 := now.AddDate(0, 0, 15)
	deadline20 := now.AddDate(0, 0, 20)

	return []*airdrop.Airdrop{
		{
			ID:           layerZeroID,
			Name:         "LayerZero Airdrop",
			Description:  "LayerZero is a protocol that enables omnichain applications. Users who have bridged assets using LayerZero protocol may be eligible for the airdrop.",
			Blockchain:   "ethereum",
			Status:       airdrop.AirdropStatusUpcoming,
			RewardToken:  "ZRO",
			RewardAmount: "1000-5000 ZRO",
			OfficialURL:  "https://layerzero.network",
			LogoURL:      "https://cryptologos.cc/logos/layerzero-zro-logo.png",
			Deadline:     &deadline45,
			SnapshotDate: &snapshot30,
			ListingDate:  &listing60,
			Tasks: []airdrop.AirdropTask{
				{
					ID:          uuid.NewString(),
					AirdropID:   layerZeroID,
					Title:       "Bridge Assets",
					Description: "Use LayerZero protocol to bridge assets between chains",
					Type:        airdrop.TaskTypeTrading,
					URL:         "https://layerzero.network/bridge",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					AirdropID:   layerZeroID,
					Title:       "Follow Twitter",
					Description: "Follow @LayerZero_Labs on Twitter",
					Type:        airdrop.TaskTypeSocial,
					URL:         "https://twitter.com/LayerZero_Labs",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					AirdropID:   layerZeroID,
					Title:       "Join Discord",
					Description: "Join LayerZero Discord community",
					Type:        airdrop.TaskTypeSocial,
					URL:         "https://discord.gg/layerzero",
					Required:    true,
				},
			},
			Requirements: []string{
				"Used LayerZero protocol for bridging",
				"Minimum 5 transactions",
				"Active wallet for 30+ days",
			},
			SocialLinks: map[string]string{
				"website": "https://layerzero.network",
				"twitter": "https://twitter.com/LayerZero_Labs",
				"discord": "https://discord.gg/layerzero",
			},
			ReputationScore: 90,
		},
		{
			ID:           arbitrumID,
			Name:         "Arbitrum ARB Airdrop",
			Description:  "Arbitrum is a Layer 2 scaling solution for Ethereum. Users who have used Arbitrum One before the snapshot may be eligible.",
			Blockchain:   "arbitrum",
			Status:       airdrop.AirdropStatusActive,
			RewardToken:  "ARB",
			RewardAmount: "500-10000 ARB",
			OfficialURL:  "https://arbitrum.foundation",
			LogoURL:      "https://cryptologos.cc/logos/arbitrum-arb-logo.png",
			Deadline:     &deadline15,
			Tasks: []airdrop.AirdropTask{
				{
					ID:          uuid.NewString(),
					AirdropID:   arbitrumID,
					Title:       "Use Arbitrum One",
					Description: "Make transactions on Arbitrum One network",
					Type:        airdrop.TaskTypeTrading,
					URL:         "https://bridge.arbitrum.io",
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					AirdropID:   arbitrumID,
					Title:       "Follow @arbitrum",
					Description: "Follow official Arbitrum Twitter",
					Type:        airdrop.TaskTypeSocial,
					URL:         "https://twitter.com/arbitrum",
					Required:    true,
				},
			},
			Requirements: []string{
				"Used Arbitrum One before snapshot",
				"Minimum transaction volume",
				"Active for multiple months",
			},
			SocialLinks: map[string]string{
				"website": "https://arbitrum.foundation",
				"twitter": "https://twitter.com/arbitrum",
			},
			ReputationScore: 95,
		},
		{
			ID:           solanaID,
			Name:         "Solana Ecosystem Airdrop",
			Description:  "Various Solana ecosystem projects are distributing tokens to active users of the Solana network.",
			Blockchain:   "solana",
			Status:       airdrop.AirdropStatusActive,
			RewardToken:  "Various",
			RewardAmount: "100-2000 tokens",
			OfficialURL:  "https://solana.com",
			LogoURL:      "https://cryptologos.cc/logos/solana-sol-logo.png",
			Deadline:     &deadline20,
			Tasks: []airdrop.AirdropTask{
				{
					ID:          uuid.NewString(),
					AirdropID:   solanaID,
					Title:       "Use Solana DeFi",
					Description: "Interact with Solana DeFi protocols",
					Type:        airdrop.TaskTypeTrading,
					Required:    true,
				},
				{
					ID:          uuid.NewString(),
					AirdropID:   solanaID,
					Title:       "Hold SOL",
					Description: "Hold minimum 1 SOL in wallet",
					Type:        airdrop.TaskTypeStaking,
					Required:    true,
				},
			},
			Requirements: []string{
				"Active Solana wallet",
				"Used DeFi protocols",
				"Minimum SOL balance",
			},
			SocialLinks: map[string]string{
				"website": "https://solana.com",
				"twitter": "https://twitter.com/solana",
			},
			ReputationScore: 85,
		},
	}
}
