package store

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/rustaceans/internal/domain"
)

// ErrStateNotInitialized is returned when the contract state row has not been created yet
var ErrStateNotInitialized = errors.New("contract state not initialized")

// Store defines the interface for persisting the collection
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,Tx=MockTx
type Store interface {
	// Execute runs fn inside a transaction holding the state lock. Calls are
	// totally ordered and fn's writes are applied only if it returns nil.
	Execute(ctx context.Context, fn func(tx Tx) error) error
	// EnsureState stores initial when no state exists and returns the stored state
	EnsureState(ctx context.Context, initial *domain.ContractState) (*domain.ContractState, error)
	// State returns the committed contract state
	State(ctx context.Context) (*domain.ContractState, error)
	// Token returns a committed token or domain.ErrUnknownToken
	Token(ctx context.Context, id domain.TokenID) (*domain.Token, error)
	// BalanceOf returns the number of tokens held by owner
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
}

// Tx is the view of the store inside Execute
type Tx interface {
	// State returns the locked contract state
	State() (*domain.ContractState, error)
	// SaveState replaces the contract state
	SaveState(state *domain.ContractState) error
	// Token returns a token or domain.ErrUnknownToken
	Token(id domain.TokenID) (*domain.Token, error)
	// CreateToken records a newly issued token
	CreateToken(token *domain.Token) error
	// UpdateTokenOwner moves a token to owner
	UpdateTokenOwner(id domain.TokenID, owner common.Address) error
	// BalanceOf returns the number of tokens held by owner, including uncommitted writes
	BalanceOf(owner common.Address) (uint64, error)
}
