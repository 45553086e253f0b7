package ethereum

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/cranes"
	"github.com/feral-file/rustaceans/internal/logger"
)

// erc721ReadABI covers the enumerable ERC-721 reads the gate needs
const erc721ReadABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}
]`

type resolver struct {
	client adapter.EthClient
	abi    abi.ABI
}

// NewResolver creates a companion collection resolver reading ERC-721 contracts through client
func NewResolver(client adapter.EthClient) (cranes.Resolver, error) {
	parsed, err := abi.JSON(strings.NewReader(erc721ReadABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return &resolver{client: client, abi: parsed}, nil
}

func (r *resolver) Resolve(collection common.Address) (cranes.BalanceSource, error) {
	return &erc721Collection{client: r.client, abi: r.abi, address: collection}, nil
}

type erc721Collection struct {
	client  adapter.EthClient
	abi     abi.ABI
	address common.Address
}

// BalanceOf fetches balanceOf(owner) from the contract
func (c *erc721Collection) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	balance, err := c.callUint(ctx, "balanceOf", owner)
	if err != nil {
		return 0, err
	}
	logger.DebugCtx(ctx, "Fetched companion balance",
		logger.Address("contract", c.address),
		logger.Address("owner", owner),
		zap.String("balance", balance.String()))
	return saturate(balance), nil
}

// TotalSupply fetches totalSupply() from the contract
func (c *erc721Collection) TotalSupply(ctx context.Context) (uint64, error) {
	supply, err := c.callUint(ctx, "totalSupply")
	if err != nil {
		return 0, err
	}
	return saturate(supply), nil
}

func (c *erc721Collection) callUint(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	to := c.address
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, c.address.Hex(), err)
	}

	var value *big.Int
	if err := c.abi.UnpackIntoInterface(&value, method, result); err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return value, nil
}

// saturate clamps v into uint64; a gate only ever compares against small counts
func saturate(v *big.Int) uint64 {
	if v.Sign() < 0 {
		return 0
	}
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}
