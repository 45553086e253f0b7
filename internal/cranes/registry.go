package cranes

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/rustaceans/internal/domain"
)

// Registry is an in-memory set of companion collections keyed by address.
// It stands in for the chain in tests and local runs.
type Registry struct {
	mu          sync.RWMutex
	collections map[common.Address]*Collection
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{collections: make(map[common.Address]*Collection)}
}

// NewLocalRegistry deploys a collection at addr and mints one Crane per
// entry of holders. A holder listed twice owns two.
func NewLocalRegistry(addr common.Address, holders []common.Address) *Registry {
	r := NewRegistry()
	if domain.IsZeroAddress(addr) {
		return r
	}
	c := r.Deploy(addr)
	for _, h := range holders {
		c.Mint(h)
	}
	return r
}

// Deploy registers a new empty collection at addr and returns it
func (r *Registry) Deploy(addr common.Address) *Collection {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Collection{owners: make(map[uint64]common.Address)}
	r.collections[addr] = c
	return c
}

// Resolve implements Resolver
func (r *Registry) Resolve(addr common.Address) (BalanceSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[addr]
	if !ok {
		return nil, fmt.Errorf("no collection deployed at %s", addr.Hex())
	}
	return c, nil
}

// Collection is an in-memory ERC-721 style companion collection
type Collection struct {
	mu     sync.RWMutex
	next   uint64
	owners map[uint64]common.Address
}

// Mint issues the next companion token to to and returns its id
func (c *Collection) Mint(to common.Address) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.owners[id] = to
	c.next++
	return id
}

// Transfer moves token id to to
func (c *Collection) Transfer(id uint64, to common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.owners[id]; !ok {
		return fmt.Errorf("crane %d: %w", id, domain.ErrUnknownToken)
	}
	c.owners[id] = to
	return nil
}

func (c *Collection) BalanceOf(_ context.Context, owner common.Address) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n uint64
	for _, o := range c.owners {
		if o == owner {
			n++
		}
	}
	return n, nil
}

func (c *Collection) TotalSupply(_ context.Context) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.next, nil
}
