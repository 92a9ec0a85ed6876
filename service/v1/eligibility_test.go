package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
)

var eligibilityNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ethereumDrop() *airdrop.Airdrop {
	return &airdrop.Airdrop{
		ID:           "drop-1",
		Name:         "Test Airdrop",
		Blockchain:   "ethereum",
		RewardAmount: "1000-5000 ZRO",
	}
}

func TestBuildEligibilityLengthMultipleOfThreeIsIneligible(t *testing.T) {
	// a well-formed 0x address is 42 chars, which the stub rejects
	addr := "0x" + strings.Repeat("a", 40)
	require.Zero(t, len(addr)%3)

	res := BuildEligibility(ethereumDrop(), addr, eligibilityNow)

	assert.False(t, res.IsEligible)
	assert.False(t, res.Details.HasTransactionHistory)
	assert.False(t, res.Details.MeetsMinimumBalance)
	assert.False(t, res.Details.ActiveBeforeSnapshot)
	assert.True(t, res.Details.AddressFormatValid)
}

func TestBuildEligibilityOtherLengthsAreEligible(t *testing.T) {
	addr := "0x" + strings.Repeat("a", 38)
	require.NotZero(t, len(addr)%3)

	res := BuildEligibility(ethereumDrop(), addr, eligibilityNow)

	assert.True(t, res.IsEligible)
	assert.True(t, res.Details.HasTransactionHistory)
	assert.True(t, res.Details.MeetsMinimumBalance)
	assert.True(t, res.Details.ActiveBeforeSnapshot)
	assert.Equal(t, "1000-5000 ZRO", res.Details.EstimatedReward)
	assert.True(t, res.CheckedAt.Equal(eligibilityNow))
}

func TestBuildEligibilityFlagsMalformedEvmAddress(t *testing.T) {
	res := BuildEligibility(ethereumDrop(), "not-a-hex-address", eligibilityNow)

	assert.False(t, res.Details.AddressFormatValid)
}

func TestBuildEligibilitySkipsFormatCheckOffEvmChains(t *testing.T) {
	drop := ethereumDrop()
	drop.Blockchain = "solana"
	drop.RewardAmount = ""

	res := BuildEligibility(drop, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", eligibilityNow)

	assert.True(t, res.Details.AddressFormatValid)
	assert.Equal(t, "Unknown", res.Details.EstimatedReward)
	assert.Equal(t, "solana", res.Details.Blockchain)
}
