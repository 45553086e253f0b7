package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

const (
	// Collection identity
	CollectionName   = "Rustaceans"
	CollectionSymbol = "RUST"

	// Companion tokens required per issuance path
	OwnerMintRequiredCranes = 1
	CraftRequiredCranes     = 2

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)

// DefaultBasePrice is 0.018 ether
func DefaultBasePrice() *big.Int {
	return big.NewInt(18 * params.Ether / 1000)
}

// DefaultDevelopmentFee is 0.002 ether
func DefaultDevelopmentFee() *big.Int {
	return big.NewInt(2 * params.Ether / 1000)
}
