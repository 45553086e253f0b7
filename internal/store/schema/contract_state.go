package schema

import (
	"time"
)

// StateRowID is the primary key of the only contract_state row
const StateRowID = 1

// ContractState represents the contract_state table - a single row holding supply counters, pricing and configuration
type ContractState struct {
	// ID is always StateRowID
	ID int16 `gorm:"column:id;primaryKey;autoIncrement:false;check:id = 1"`
	// Owner is the privileged caller address
	Owner string `gorm:"column:owner;not null;type:text"`
	// Cranes is the companion collection address
	Cranes string `gorm:"column:cranes;not null;type:text"`
	// TotalIssued is the lifetime issuance counter
	TotalIssued int64 `gorm:"column:total_issued;not null;default:0"`
	// YearIssued is the issuance counter for the year starting at YearAnchor
	YearIssued int64 `gorm:"column:year_issued;not null;default:0"`
	// YearAnchor is 00:00 UTC on January 1 of the counted year
	YearAnchor time.Time `gorm:"column:year_anchor;not null;type:timestamptz"`
	// BasePrice in wei (stored as string to support up to 78 digits)
	BasePrice string `gorm:"column:base_price;not null;type:numeric(78,0)"`
	// DevelopmentFee in wei
	DevelopmentFee string `gorm:"column:development_fee;not null;type:numeric(78,0)"`
	// EarlySupply is the supply below which the early discount applies
	EarlySupply int64 `gorm:"column:early_supply;not null;default:0"`
	// EarlyDiscountBps is the early discount on the base price in basis points
	EarlyDiscountBps int64 `gorm:"column:early_discount_bps;not null;default:0"`
	// Collected is the withdrawable balance in wei
	Collected string `gorm:"column:collected;not null;type:numeric(78,0);default:0"`
	// CreatedAt is the timestamp when the state was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the state was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContractState model
func (ContractState) TableName() string {
	return "contract_state"
}
