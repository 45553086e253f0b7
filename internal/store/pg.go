package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables used by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.ContractState{}, &schema.Token{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool applies pool settings to the sql.DB behind db.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings fills zero settings with defaults
// (10 open, 2 idle, 5m lifetime, 10m idle time) and caps idle at open.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Execute runs fn in a database transaction. The contract_state row is
// locked with SELECT ... FOR UPDATE so concurrent calls queue behind it.
func (s *pgStore) Execute(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.ContractState
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", schema.StateRowID).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStateNotInitialized
			}
			return fmt.Errorf("failed to lock contract state: %w", err)
		}

		return fn(&pgTx{db: tx, row: &row})
	})
}

// EnsureState inserts initial unless a state row already exists
func (s *pgStore) EnsureState(ctx context.Context, initial *domain.ContractState) (*domain.ContractState, error) {
	row := stateToRow(initial)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create contract state: %w", err)
	}

	return s.State(ctx)
}

func (s *pgStore) State(ctx context.Context) (*domain.ContractState, error) {
	var row schema.ContractState
	err := s.db.WithContext(ctx).Where("id = ?", schema.StateRowID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotInitialized
		}
		return nil, fmt.Errorf("failed to get contract state: %w", err)
	}
	return rowToState(&row)
}

func (s *pgStore) Token(ctx context.Context, id domain.TokenID) (*domain.Token, error) {
	return getToken(s.db.WithContext(ctx), id)
}

func (s *pgStore) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return countOwned(s.db.WithContext(ctx), owner)
}

type pgTx struct {
	db  *gorm.DB
	row *schema.ContractState
}

func (tx *pgTx) State() (*domain.ContractState, error) {
	return rowToState(tx.row)
}

func (tx *pgTx) SaveState(state *domain.ContractState) error {
	row := stateToRow(state)
	row.CreatedAt = tx.row.CreatedAt
	if err := tx.db.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save contract state: %w", err)
	}
	tx.row = &row
	return nil
}

func (tx *pgTx) Token(id domain.TokenID) (*domain.Token, error) {
	return getToken(tx.db, id)
}

func (tx *pgTx) CreateToken(token *domain.Token) error {
	row := schema.Token{
		ID:       int64(token.ID),
		Owner:    token.Owner.Hex(),
		Minter:   token.Minter.Hex(),
		Kind:     string(token.Kind),
		Paid:     amountString(token.Paid),
		IssuedAt: token.IssuedAt.UTC(),
	}
	if err := tx.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create token %s: %w", token.ID, err)
	}
	return nil
}

func (tx *pgTx) UpdateTokenOwner(id domain.TokenID, owner common.Address) error {
	result := tx.db.Model(&schema.Token{}).
		Where("id = ?", int64(id)).
		Updates(map[string]interface{}{
			"owner":      owner.Hex(),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update owner of token %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("token %s: %w", id, domain.ErrUnknownToken)
	}
	return nil
}

func (tx *pgTx) BalanceOf(owner common.Address) (uint64, error) {
	return countOwned(tx.db, owner)
}

func getToken(db *gorm.DB, id domain.TokenID) (*domain.Token, error) {
	var row schema.Token
	if err := db.Where("id = ?", int64(id)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token %s: %w", id, domain.ErrUnknownToken)
		}
		return nil, fmt.Errorf("failed to get token %s: %w", id, err)
	}

	paid, err := parseAmount(row.Paid)
	if err != nil {
		return nil, err
	}
	return &domain.Token{
		ID:       domain.TokenID(row.ID),
		Owner:    common.HexToAddress(row.Owner),
		Minter:   common.HexToAddress(row.Minter),
		Kind:     domain.IssuanceKind(row.Kind),
		Paid:     paid,
		IssuedAt: row.IssuedAt.UTC(),
	}, nil
}

func countOwned(db *gorm.DB, owner common.Address) (uint64, error) {
	var n int64
	if err := db.Model(&schema.Token{}).Where("owner = ?", owner.Hex()).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count tokens of %s: %w", owner.Hex(), err)
	}
	return uint64(n), nil
}

func stateToRow(s *domain.ContractState) schema.ContractState {
	return schema.ContractState{
		ID:               schema.StateRowID,
		Owner:            s.Owner.Hex(),
		Cranes:           s.Cranes.Hex(),
		TotalIssued:      int64(s.Supply.TotalIssued),
		YearIssued:       int64(s.Supply.YearIssued),
		YearAnchor:       s.Supply.YearAnchor.UTC(),
		BasePrice:        amountString(s.Pricing.BasePrice),
		DevelopmentFee:   amountString(s.Pricing.DevelopmentFee),
		EarlySupply:      int64(s.Pricing.EarlySupply),
		EarlyDiscountBps: int64(s.Pricing.EarlyDiscountBps),
		Collected:        amountString(s.Collected),
	}
}

func rowToState(row *schema.ContractState) (*domain.ContractState, error) {
	base, err := parseAmount(row.BasePrice)
	if err != nil {
		return nil, err
	}
	fee, err := parseAmount(row.DevelopmentFee)
	if err != nil {
		return nil, err
	}
	collected, err := parseAmount(row.Collected)
	if err != nil {
		return nil, err
	}

	return &domain.ContractState{
		Owner:  common.HexToAddress(row.Owner),
		Cranes: common.HexToAddress(row.Cranes),
		Supply: domain.Supply{
			TotalIssued: uint64(row.TotalIssued),
			YearIssued:  uint64(row.YearIssued),
			YearAnchor:  row.YearAnchor.UTC(),
		},
		Pricing: domain.Pricing{
			BasePrice:        base,
			DevelopmentFee:   fee,
			EarlySupply:      uint64(row.EarlySupply),
			EarlyDiscountBps: uint64(row.EarlyDiscountBps),
		},
		Collected: collected,
	}, nil
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount in database: %q", s)
	}
	return v, nil
}
