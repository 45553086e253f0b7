package cranes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/cranes"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/mocks"
)

var (
	cranesAddr = common.HexToAddress("0xC0FFEE0000000000000000000000000000000001")
	alice      = common.HexToAddress("0x000000000000000000000000000000000000A11C")
	bob        = common.HexToAddress("0x0000000000000000000000000000000000000B0B")
)

func TestGate_Registry(t *testing.T) {
	registry := cranes.NewRegistry()
	collection := registry.Deploy(cranesAddr)
	gate := cranes.NewGate(registry)
	ctx := context.Background()

	// nothing minted yet
	err := gate.HasSufficientCranes(ctx, cranesAddr, alice, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCranes)
	assert.ErrorIs(t, err, domain.ErrNoCranesMinted)
	assert.Equal(t, domain.ReasonNotEnoughCranes, domain.Reason(err))
	assert.Equal(t, domain.ReasonNoCranesMinted, domain.Diagnostic(err))

	collection.Mint(bob)

	// cranes exist but alice holds none
	err = gate.HasSufficientCranes(ctx, cranesAddr, alice, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCranes)
	assert.NotErrorIs(t, err, domain.ErrNoCranesMinted)
	assert.Equal(t, domain.ReasonNotEnoughCranes, domain.Diagnostic(err))

	first := collection.Mint(alice)
	assert.NoError(t, gate.HasSufficientCranes(ctx, cranesAddr, alice, 1))
	assert.ErrorIs(t, gate.HasSufficientCranes(ctx, cranesAddr, alice, 2), domain.ErrInsufficientCranes)

	collection.Mint(alice)
	assert.NoError(t, gate.HasSufficientCranes(ctx, cranesAddr, alice, 2))

	require.NoError(t, collection.Transfer(first, bob))
	assert.ErrorIs(t, gate.HasSufficientCranes(ctx, cranesAddr, alice, 2), domain.ErrInsufficientCranes)
	assert.NoError(t, gate.HasSufficientCranes(ctx, cranesAddr, bob, 2))
}

func TestGate_NotConfigured(t *testing.T) {
	gate := cranes.NewGate(cranes.NewRegistry())

	err := gate.HasSufficientCranes(context.Background(), common.Address{}, alice, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCranes)
	assert.ErrorIs(t, err, domain.ErrCranesNotConfigured)
	assert.Equal(t, domain.ReasonCranesNotConfigured, domain.Diagnostic(err))
}

func TestGate_UnknownCollection(t *testing.T) {
	gate := cranes.NewGate(cranes.NewRegistry())

	err := gate.HasSufficientCranes(context.Background(), cranesAddr, alice, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCranes)
	assert.ErrorIs(t, err, domain.ErrCranesUnavailable)
}

func TestGate_SourceFailures(t *testing.T) {
	rpcErr := errors.New("rpc timeout")

	tests := []struct {
		name  string
		setup func(source *mocks.MockBalanceSource)
	}{
		{
			name: "total supply fails",
			setup: func(source *mocks.MockBalanceSource) {
				source.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), rpcErr)
			},
		},
		{
			name: "balance fails",
			setup: func(source *mocks.MockBalanceSource) {
				source.EXPECT().TotalSupply(gomock.Any()).Return(uint64(10), nil)
				source.EXPECT().BalanceOf(gomock.Any(), alice).Return(uint64(0), rpcErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockBalanceSource(ctrl)
			resolver := mocks.NewMockCranesResolver(ctrl)
			resolver.EXPECT().Resolve(cranesAddr).Return(source, nil)
			tt.setup(source)

			err := cranes.NewGate(resolver).HasSufficientCranes(context.Background(), cranesAddr, alice, 1)
			assert.ErrorIs(t, err, domain.ErrInsufficientCranes)
			assert.ErrorIs(t, err, domain.ErrCranesUnavailable)
			assert.ErrorIs(t, err, rpcErr)
			assert.Equal(t, domain.ReasonNotEnoughCranes, domain.Reason(err))
		})
	}
}

func TestCollection_TransferUnknown(t *testing.T) {
	collection := cranes.NewRegistry().Deploy(cranesAddr)
	assert.ErrorIs(t, collection.Transfer(7, alice), domain.ErrUnknownToken)
}

func TestNewLocalRegistry(t *testing.T) {
	ctx := context.Background()
	gate := cranes.NewGate(cranes.NewLocalRegistry(cranesAddr, []common.Address{alice, alice, bob}))

	assert.NoError(t, gate.HasSufficientCranes(ctx, cranesAddr, alice, 2))
	assert.NoError(t, gate.HasSufficientCranes(ctx, cranesAddr, bob, 1))
	assert.ErrorIs(t, gate.HasSufficientCranes(ctx, cranesAddr, bob, 2), domain.ErrInsufficientCranes)

	// deployed but empty
	err := cranes.NewGate(cranes.NewLocalRegistry(cranesAddr, nil)).HasSufficientCranes(ctx, cranesAddr, alice, 1)
	assert.ErrorIs(t, err, domain.ErrNoCranesMinted)

	// nothing is deployed at the zero address
	registry := cranes.NewLocalRegistry(common.Address{}, []common.Address{alice})
	_, err = registry.Resolve(common.Address{})
	assert.Error(t, err)
}
