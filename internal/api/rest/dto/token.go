package dto

import (
	"math/big"
	"time"

	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/issuance"
)

// Amounts are decimal wei strings so clients never lose precision.

// CollectionResponse represents the collection state
type CollectionResponse struct {
	Name                   string    `json:"name"`
	Symbol                 string    `json:"symbol"`
	Owner                  string    `json:"owner"`
	Cranes                 string    `json:"cranes"`
	TotalSupply            uint64    `json:"total_supply"`
	CurrentYearTotalSupply uint64    `json:"current_year_total_supply"`
	YearAnchor             time.Time `json:"year_anchor"`
	BasePrice              string    `json:"base_price"`
	DevelopmentFee         string    `json:"development_fee"`
	RequiredPayment        string    `json:"required_payment"`
	Collected              string    `json:"collected"`
}

// TokenResponse represents an issued token
type TokenResponse struct {
	TokenID  string              `json:"token_id"`
	Owner    string              `json:"owner"`
	Minter   string              `json:"minter"`
	Kind     domain.IssuanceKind `json:"kind"`
	Paid     string              `json:"paid"`
	IssuedAt time.Time           `json:"issued_at"`
}

// TokenURIResponse carries the inlined metadata document
type TokenURIResponse struct {
	TokenID  string `json:"token_id"`
	TokenURI string `json:"token_uri"`
}

// BalanceResponse represents the number of tokens held by an address
type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// WithdrawResponse carries the amount released by a withdrawal
type WithdrawResponse struct {
	Amount string `json:"amount"`
}

// MintRequest is the body of POST /mint
type MintRequest struct {
	Recipient string `json:"recipient" binding:"required"`
}

// CraftRequest is the body of POST /craft. An empty recipient crafts for the caller.
type CraftRequest struct {
	Recipient string `json:"recipient"`
	Payment   string `json:"payment" binding:"required"`
}

// TransferRequest is the body of POST /tokens/:id/transfer
type TransferRequest struct {
	To string `json:"to" binding:"required"`
}

// AmountRequest is the body of the price and fee updates
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// AddressRequest is the body of PUT /admin/cranes
type AddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// MapCollection converts the controller snapshot
func MapCollection(info *issuance.Info) CollectionResponse {
	return CollectionResponse{
		Name:                   info.Name,
		Symbol:                 info.Symbol,
		Owner:                  info.Owner.Hex(),
		Cranes:                 info.Cranes.Hex(),
		TotalSupply:            info.TotalSupply,
		CurrentYearTotalSupply: info.CurrentYearTotalSupply,
		YearAnchor:             info.YearAnchor,
		BasePrice:              Amount(info.BasePrice),
		DevelopmentFee:         Amount(info.DevelopmentFee),
		RequiredPayment:        Amount(info.RequiredPayment),
		Collected:              Amount(info.Collected),
	}
}

// MapToken converts a domain token
func MapToken(t *domain.Token) TokenResponse {
	return TokenResponse{
		TokenID:  t.ID.String(),
		Owner:    t.Owner.Hex(),
		Minter:   t.Minter.Hex(),
		Kind:     t.Kind,
		Paid:     Amount(t.Paid),
		IssuedAt: t.IssuedAt,
	}
}

// Amount formats a wei amount; nil is zero
func Amount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
