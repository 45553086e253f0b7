package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenID(t *testing.T) {
	id, err := ParseTokenID("42")
	require.NoError(t, err)
	assert.Equal(t, TokenID(42), id)
	assert.Equal(t, "42", id.String())

	for _, s := range []string{"", "-1", "0x10", "1.5", "18446744073709551616"} {
		_, err := ParseTokenID(s)
		assert.Error(t, err, s)
	}
}

func TestDefaultPrices(t *testing.T) {
	assert.Equal(t, "18000000000000000", DefaultBasePrice().String())
	assert.Equal(t, "2000000000000000", DefaultDevelopmentFee().String())
}

func TestNewContractState(t *testing.T) {
	owner := common.HexToAddress("0xaa")
	cranes := common.HexToAddress("0xbb")
	now := time.Date(2026, time.July, 4, 12, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))

	s := NewContractState(owner, cranes, Pricing{}, now)
	assert.Equal(t, owner, s.Owner)
	assert.Equal(t, cranes, s.Cranes)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), s.Supply.YearAnchor)
	assert.Zero(t, s.Supply.TotalIssued)
	assert.Equal(t, 0, s.Pricing.BasePrice.Cmp(DefaultBasePrice()))
	assert.Equal(t, 0, s.Pricing.DevelopmentFee.Cmp(DefaultDevelopmentFee()))
	assert.Zero(t, s.Collected.Sign())
}

func TestContractState_Clone(t *testing.T) {
	s := NewContractState(common.HexToAddress("0xaa"), common.Address{}, Pricing{BasePrice: big.NewInt(5)}, time.Now())
	c := s.Clone()

	c.Pricing.BasePrice.SetInt64(99)
	c.Collected.SetInt64(7)
	assert.Equal(t, int64(5), s.Pricing.BasePrice.Int64())
	assert.Zero(t, s.Collected.Sign())

	var nilState *ContractState
	assert.Nil(t, nilState.Clone())
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(common.Address{}))
	assert.True(t, IsZeroAddress(common.HexToAddress(ETHEREUM_ZERO_ADDRESS)))
	assert.False(t, IsZeroAddress(common.HexToAddress("0x01")))
}
