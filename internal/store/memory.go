package store

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/rustaceans/internal/domain"
)

type memoryStore struct {
	mu       sync.Mutex
	state    *domain.ContractState
	tokens   map[domain.TokenID]*domain.Token
	balances map[common.Address]uint64
}

// NewMemoryStore creates a process-local store. initial may be nil, in which
// case EnsureState must be called before the first Execute.
func NewMemoryStore(initial *domain.ContractState) Store {
	return &memoryStore{
		state:    initial.Clone(),
		tokens:   make(map[domain.TokenID]*domain.Token),
		balances: make(map[common.Address]uint64),
	}
}

func (s *memoryStore) Execute(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrStateNotInitialized
	}

	tx := &memoryTx{store: s, state: s.state.Clone(), staged: make(map[domain.TokenID]*domain.Token)}
	if err := fn(tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

func (s *memoryStore) EnsureState(_ context.Context, initial *domain.ContractState) (*domain.ContractState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		s.state = initial.Clone()
	}
	return s.state.Clone(), nil
}

func (s *memoryStore) State(_ context.Context) (*domain.ContractState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrStateNotInitialized
	}
	return s.state.Clone(), nil
}

func (s *memoryStore) Token(_ context.Context, id domain.TokenID) (*domain.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tokens[id]
	if !ok {
		return nil, fmt.Errorf("token %s: %w", id, domain.ErrUnknownToken)
	}
	return cloneToken(t), nil
}

func (s *memoryStore) BalanceOf(_ context.Context, owner common.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[owner], nil
}

// memoryTx stages writes on top of the committed maps
type memoryTx struct {
	store  *memoryStore
	state  *domain.ContractState
	staged map[domain.TokenID]*domain.Token
}

func (tx *memoryTx) State() (*domain.ContractState, error) {
	return tx.state.Clone(), nil
}

func (tx *memoryTx) SaveState(state *domain.ContractState) error {
	tx.state = state.Clone()
	return nil
}

func (tx *memoryTx) Token(id domain.TokenID) (*domain.Token, error) {
	if t, ok := tx.staged[id]; ok {
		return cloneToken(t), nil
	}
	if t, ok := tx.store.tokens[id]; ok {
		return cloneToken(t), nil
	}
	return nil, fmt.Errorf("token %s: %w", id, domain.ErrUnknownToken)
}

func (tx *memoryTx) CreateToken(token *domain.Token) error {
	if _, err := tx.Token(token.ID); err == nil {
		return fmt.Errorf("token %s already exists", token.ID)
	}
	tx.staged[token.ID] = cloneToken(token)
	return nil
}

func (tx *memoryTx) UpdateTokenOwner(id domain.TokenID, owner common.Address) error {
	t, err := tx.Token(id)
	if err != nil {
		return err
	}
	t.Owner = owner
	tx.staged[id] = t
	return nil
}

func (tx *memoryTx) BalanceOf(owner common.Address) (uint64, error) {
	n := tx.store.balances[owner]
	for id, t := range tx.staged {
		if prev, ok := tx.store.tokens[id]; ok && prev.Owner == owner {
			n--
		}
		if t.Owner == owner {
			n++
		}
	}
	return n, nil
}

func (tx *memoryTx) commit() {
	s := tx.store
	for id, t := range tx.staged {
		if prev, ok := s.tokens[id]; ok {
			s.balances[prev.Owner]--
			if s.balances[prev.Owner] == 0 {
				delete(s.balances, prev.Owner)
			}
		}
		s.tokens[id] = t
		s.balances[t.Owner]++
	}
	s.state = tx.state
}

func cloneToken(t *domain.Token) *domain.Token {
	c := *t
	if t.Paid != nil {
		c.Paid = new(big.Int).Set(t.Paid)
	}
	return &c
}
