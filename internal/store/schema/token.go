package schema

import (
	"time"
)

// Token represents the tokens table - the ownership ledger of issued Rustaceans
type Token struct {
	// ID is the sequential token id assigned at issuance
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Owner is the current holder address
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_owner"`
	// Minter is the caller that issued the token
	Minter string `gorm:"column:minter;not null;type:text"`
	// Kind is the issuance path (owner_mint, craft_self, craft_friend)
	Kind string `gorm:"column:kind;not null;type:text"`
	// Paid is the wei attached to the issuing call
	Paid string `gorm:"column:paid;not null;type:numeric(78,0)"`
	// IssuedAt is when the issuance committed
	IssuedAt time.Time `gorm:"column:issued_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
