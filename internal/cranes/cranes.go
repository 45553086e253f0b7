// Package cranes implements the ownership gate backed by the companion Crane collection.
package cranes

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/logger"
)

// BalanceSource reads holdings from a companion collection
//
//go:generate mockgen -source=cranes.go -destination=../mocks/cranes.go -package=mocks -mock_names=BalanceSource=MockBalanceSource,Resolver=MockCranesResolver
type BalanceSource interface {
	// BalanceOf returns the number of companion tokens held by owner
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	// TotalSupply returns the number of companion tokens in existence
	TotalSupply(ctx context.Context) (uint64, error)
}

// Resolver maps a companion collection address to a BalanceSource
type Resolver interface {
	Resolve(collection common.Address) (BalanceSource, error)
}

// Gate authorizes issuance against companion holdings
type Gate interface {
	// HasSufficientCranes returns nil when holder controls at least required tokens of
	// the collection at cranes. Every failure wraps domain.ErrInsufficientCranes; the
	// configuration and availability failures additionally wrap a diagnostic sentinel.
	HasSufficientCranes(ctx context.Context, cranes, holder common.Address, required uint64) error
}

type gate struct {
	resolver Resolver
}

// NewGate creates a gate reading through resolver
func NewGate(resolver Resolver) Gate {
	return &gate{resolver: resolver}
}

func (g *gate) HasSufficientCranes(ctx context.Context, cranes, holder common.Address, required uint64) error {
	if domain.IsZeroAddress(cranes) {
		err := fmt.Errorf("%w: %w", domain.ErrInsufficientCranes, domain.ErrCranesNotConfigured)
		logger.ErrorCtx(ctx, err, logger.Address("holder", holder))
		return err
	}

	source, err := g.resolver.Resolve(cranes)
	if err != nil {
		return g.unavailable(ctx, cranes, err)
	}

	supply, err := source.TotalSupply(ctx)
	if err != nil {
		return g.unavailable(ctx, cranes, err)
	}
	if supply == 0 {
		logger.WarnCtx(ctx, "Companion collection has no tokens",
			logger.Address("cranes", cranes),
			logger.Address("holder", holder))
		return fmt.Errorf("%w: %w", domain.ErrInsufficientCranes, domain.ErrNoCranesMinted)
	}

	balance, err := source.BalanceOf(ctx, holder)
	if err != nil {
		return g.unavailable(ctx, cranes, err)
	}
	if balance < required {
		logger.DebugCtx(ctx, "Companion balance below requirement",
			logger.Address("holder", holder),
			zap.Uint64("balance", balance),
			zap.Uint64("required", required))
		return fmt.Errorf("%w: holder %s has %d, needs %d", domain.ErrInsufficientCranes, holder.Hex(), balance, required)
	}

	return nil
}

func (g *gate) unavailable(ctx context.Context, cranes common.Address, cause error) error {
	err := fmt.Errorf("%w: %w: %w", domain.ErrInsufficientCranes, domain.ErrCranesUnavailable, cause)
	logger.ErrorCtx(ctx, err, logger.Address("cranes", cranes))
	return err
}
