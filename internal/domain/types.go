package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TokenID is the sequential identifier assigned at issuance
type TokenID uint64

// String returns the decimal form of the id
func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseTokenID parses a decimal token id
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q: %w", s, err)
	}
	return TokenID(v), nil
}

// IssuanceKind represents the path a token was issued through
type IssuanceKind string

const (
	IssuanceKindOwnerMint   IssuanceKind = "owner_mint"
	IssuanceKindCraftSelf   IssuanceKind = "craft_self"
	IssuanceKindCraftFriend IssuanceKind = "craft_friend"
)

// Token represents an issued Rustacean.
// Its appearance is derived from ID alone and is never stored.
type Token struct {
	ID       TokenID        `json:"id"`
	Owner    common.Address `json:"owner"`
	Minter   common.Address `json:"minter"`   // caller that issued the token
	Kind     IssuanceKind   `json:"kind"`     // issuance path
	Paid     *big.Int       `json:"paid"`     // wei attached to the issuing call
	IssuedAt time.Time      `json:"issuedAt"` // time the issuance committed
}

// Supply holds the issuance counters
type Supply struct {
	TotalIssued uint64    `json:"totalIssued"` // lifetime, never decreases
	YearIssued  uint64    `json:"yearIssued"`  // issued since YearAnchor
	YearAnchor  time.Time `json:"yearAnchor"`  // start of the calendar year the counter belongs to
}

// Pricing holds the owner-controlled price components in wei
type Pricing struct {
	BasePrice        *big.Int `json:"basePrice"`
	DevelopmentFee   *big.Int `json:"developmentFee"`
	EarlySupply      uint64   `json:"earlySupply"`      // tokens below this supply get the early discount (0 = disabled)
	EarlyDiscountBps uint64   `json:"earlyDiscountBps"` // discount on the base price in basis points
}

// Clone returns a deep copy
func (p Pricing) Clone() Pricing {
	return Pricing{
		BasePrice:        cloneInt(p.BasePrice),
		DevelopmentFee:   cloneInt(p.DevelopmentFee),
		EarlySupply:      p.EarlySupply,
		EarlyDiscountBps: p.EarlyDiscountBps,
	}
}

// ContractState is the process-wide state of the collection.
// It is only mutated by the issuance controller inside a store transaction.
type ContractState struct {
	Owner     common.Address `json:"owner"`     // privileged caller
	Cranes    common.Address `json:"cranes"`    // companion collection address
	Supply    Supply         `json:"supply"`
	Pricing   Pricing        `json:"pricing"`
	Collected *big.Int       `json:"collected"` // payments received and not yet withdrawn
}

// Clone returns a deep copy
func (s *ContractState) Clone() *ContractState {
	if s == nil {
		return nil
	}
	return &ContractState{
		Owner:     s.Owner,
		Cranes:    s.Cranes,
		Supply:    s.Supply,
		Pricing:   s.Pricing.Clone(),
		Collected: cloneInt(s.Collected),
	}
}

// NewContractState returns the initial state for a freshly deployed collection
func NewContractState(owner, cranes common.Address, pricing Pricing, now time.Time) *ContractState {
	if pricing.BasePrice == nil {
		pricing.BasePrice = DefaultBasePrice()
	}
	if pricing.DevelopmentFee == nil {
		pricing.DevelopmentFee = DefaultDevelopmentFee()
	}
	y := now.UTC().Year()
	return &ContractState{
		Owner:  owner,
		Cranes: cranes,
		Supply: Supply{
			YearAnchor: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		Pricing:   pricing.Clone(),
		Collected: new(big.Int),
	}
}

// IssuanceEvent is published after an issuance commits.
// It mirrors an ERC-721 Transfer from the zero address.
type IssuanceEvent struct {
	EventID   string       `json:"event_id"`
	Contract  string       `json:"contract"`
	TokenID   TokenID      `json:"token_id"`
	Kind      IssuanceKind `json:"kind"`
	Minter    string       `json:"minter"`
	To        string       `json:"to"`
	Paid      string       `json:"paid"`
	Timestamp time.Time    `json:"timestamp"`
}

// IsZeroAddress reports whether addr is the zero address
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}

func cloneInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
