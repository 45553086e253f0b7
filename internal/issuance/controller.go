// Package issuance implements the token issuance state machine: owner mint,
// payable crafting and the owner-only administration of price and companion
// collection. Every mutating call is one store transaction.
package issuance

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/cranes"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/messaging"
	"github.com/feral-file/rustaceans/internal/metrics"
	"github.com/feral-file/rustaceans/internal/pricing"
	"github.com/feral-file/rustaceans/internal/render"
	"github.com/feral-file/rustaceans/internal/store"
	"github.com/feral-file/rustaceans/internal/supply"
)

// Operation names used in logs and metrics
const (
	OpMint              = "mint"
	OpCraftForSelf      = "craft_for_self"
	OpCraftForFriend    = "craft_for_friend"
	OpSetPrice          = "set_price"
	OpSetDevelopmentFee = "set_development_fee"
	OpSetCranes         = "set_cranes"
	OpTransfer          = "transfer"
	OpWithdraw          = "withdraw"
)

// Info is a snapshot of the collection
type Info struct {
	Name                   string         `json:"name"`
	Symbol                 string         `json:"symbol"`
	Owner                  common.Address `json:"owner"`
	Cranes                 common.Address `json:"cranes"`
	TotalSupply            uint64         `json:"totalSupply"`
	CurrentYearTotalSupply uint64         `json:"currentYearTotalSupply"`
	YearAnchor             time.Time      `json:"yearAnchor"`
	BasePrice              *big.Int       `json:"basePrice"`
	DevelopmentFee         *big.Int       `json:"developmentFee"`
	RequiredPayment        *big.Int       `json:"requiredPayment"`
	Collected              *big.Int       `json:"collected"`
}

// Controller is the entry point for every issuance and administrative call.
// The caller identity is supplied by the transport, already authenticated.
//
//go:generate mockgen -source=controller.go -destination=../mocks/controller.go -package=mocks -mock_names=Controller=MockController
type Controller interface {
	Name() string
	Symbol() string

	// Mint issues a token to recipient for free. Owner only; recipient must hold a Crane.
	Mint(ctx context.Context, caller, recipient common.Address) (*domain.Token, error)
	// CraftForSelf issues a paid token to caller, who must hold two Cranes
	CraftForSelf(ctx context.Context, caller common.Address, payment *big.Int) (*domain.Token, error)
	// CraftForFriend issues a paid token to recipient; caller must hold two Cranes
	CraftForFriend(ctx context.Context, caller, recipient common.Address, payment *big.Int) (*domain.Token, error)

	SetPrice(ctx context.Context, caller common.Address, amount *big.Int) error
	SetDevelopmentFee(ctx context.Context, caller common.Address, amount *big.Int) error
	SetCranes(ctx context.Context, caller, collection common.Address) error
	// Withdraw zeroes the collected payments and returns the amount released
	Withdraw(ctx context.Context, caller common.Address) (*big.Int, error)
	// Transfer moves token id from caller to to
	Transfer(ctx context.Context, caller, to common.Address, id domain.TokenID) error

	TotalSupply(ctx context.Context) (uint64, error)
	CurrentYearTotalSupply(ctx context.Context) (uint64, error)
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	OwnerOf(ctx context.Context, id domain.TokenID) (common.Address, error)
	RequiredPayment(ctx context.Context) (*big.Int, error)
	Info(ctx context.Context) (*Info, error)
	Token(ctx context.Context, id domain.TokenID) (*domain.Token, error)

	// TokenURI returns the inlined metadata document of an issued token
	TokenURI(ctx context.Context, id domain.TokenID) (string, error)
	// Image returns the SVG of an issued token
	Image(ctx context.Context, id domain.TokenID) ([]byte, error)
}

type controller struct {
	store     store.Store
	gate      cranes.Gate
	renderer  render.Renderer
	publisher messaging.Publisher
	clock     adapter.Clock
	metrics   *metrics.Metrics
	contract  common.Address
}

// NewController creates an issuance controller. contract is the address
// reported in published events.
func NewController(
	st store.Store,
	gate cranes.Gate,
	renderer render.Renderer,
	publisher messaging.Publisher,
	clock adapter.Clock,
	m *metrics.Metrics,
	contract common.Address,
) Controller {
	return &controller{
		store:     st,
		gate:      gate,
		renderer:  renderer,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		contract:  contract,
	}
}

func (c *controller) Name() string {
	return domain.CollectionName
}

func (c *controller) Symbol() string {
	return domain.CollectionSymbol
}

type issueRequest struct {
	op        string
	kind      domain.IssuanceKind
	caller    common.Address
	recipient common.Address
	payment   *big.Int
	// check runs under the state lock before any write
	check func(ctx context.Context, state *domain.ContractState) error
}

func (c *controller) Mint(ctx context.Context, caller, recipient common.Address) (*domain.Token, error) {
	return c.issue(ctx, issueRequest{
		op:        OpMint,
		kind:      domain.IssuanceKindOwnerMint,
		caller:    caller,
		recipient: recipient,
		check: func(ctx context.Context, state *domain.ContractState) error {
			if err := requireOwner(state, caller); err != nil {
				return err
			}
			if err := requireRecipient(recipient); err != nil {
				return err
			}
			return c.gate.HasSufficientCranes(ctx, state.Cranes, recipient, domain.OwnerMintRequiredCranes)
		},
	})
}

func (c *controller) CraftForSelf(ctx context.Context, caller common.Address, payment *big.Int) (*domain.Token, error) {
	return c.issue(ctx, issueRequest{
		op:        OpCraftForSelf,
		kind:      domain.IssuanceKindCraftSelf,
		caller:    caller,
		recipient: caller,
		payment:   payment,
		check: func(ctx context.Context, state *domain.ContractState) error {
			// payment is checked before the gate
			if err := pricing.CheckPayment(state.Pricing, state.Supply.TotalIssued, payment); err != nil {
				return err
			}
			return c.gate.HasSufficientCranes(ctx, state.Cranes, caller, domain.CraftRequiredCranes)
		},
	})
}

func (c *controller) CraftForFriend(ctx context.Context, caller, recipient common.Address, payment *big.Int) (*domain.Token, error) {
	return c.issue(ctx, issueRequest{
		op:        OpCraftForFriend,
		kind:      domain.IssuanceKindCraftFriend,
		caller:    caller,
		recipient: recipient,
		payment:   payment,
		check: func(ctx context.Context, state *domain.ContractState) error {
			if err := requireRecipient(recipient); err != nil {
				return err
			}
			if err := pricing.CheckPayment(state.Pricing, state.Supply.TotalIssued, payment); err != nil {
				return err
			}
			return c.gate.HasSufficientCranes(ctx, state.Cranes, caller, domain.CraftRequiredCranes)
		},
	})
}

func (c *controller) issue(ctx context.Context, req issueRequest) (*domain.Token, error) {
	var token *domain.Token
	var total uint64

	err := c.store.Execute(ctx, func(tx store.Tx) error {
		state, err := tx.State()
		if err != nil {
			return err
		}
		if err := req.check(ctx, state); err != nil {
			return err
		}

		now := c.clock.Now().UTC()
		id, next := supply.Next(state.Supply, now)
		state.Supply = next

		paid := new(big.Int)
		if req.payment != nil {
			paid.Set(req.payment)
		}
		state.Collected = new(big.Int).Add(state.Collected, paid)

		token = &domain.Token{
			ID:       id,
			Owner:    req.recipient,
			Minter:   req.caller,
			Kind:     req.kind,
			Paid:     paid,
			IssuedAt: now,
		}
		if err := tx.CreateToken(token); err != nil {
			return err
		}
		total = next.TotalIssued
		return tx.SaveState(state)
	})
	if err != nil {
		c.reject(ctx, req.op, req.caller, err)
		return nil, err
	}

	c.metrics.Issuances.WithLabelValues(string(token.Kind)).Inc()
	c.metrics.TotalSupply.Set(float64(total))
	logger.InfoCtx(ctx, "Token issued",
		zap.String("operation", req.op),
		zap.Stringer("token_id", token.ID),
		logger.Address("minter", token.Minter),
		logger.Address("owner", token.Owner),
		zap.String("paid", token.Paid.String()))

	c.announce(ctx, token)
	return token, nil
}

// announce publishes the issuance event. Failures are logged only.
func (c *controller) announce(ctx context.Context, token *domain.Token) {
	event := &domain.IssuanceEvent{
		EventID:   uuid.NewString(),
		Contract:  c.contract.Hex(),
		TokenID:   token.ID,
		Kind:      token.Kind,
		Minter:    token.Minter.Hex(),
		To:        token.Owner.Hex(),
		Paid:      token.Paid.String(),
		Timestamp: token.IssuedAt,
	}
	if err := c.publisher.PublishIssuance(ctx, event); err != nil {
		c.metrics.PublishFails.Inc()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish issuance event: %w", err),
			zap.Stringer("token_id", token.ID),
			zap.String("event_id", event.EventID))
	}
}

// reject records a failed call. Rejections are expected and logged at warn;
// anything else is an internal failure.
func (c *controller) reject(ctx context.Context, op string, caller common.Address, err error) {
	if !domain.IsRejection(err) {
		logger.ErrorCtx(ctx, fmt.Errorf("%s failed: %w", op, err), logger.Address("caller", caller))
		return
	}

	diagnostic := domain.Diagnostic(err)
	c.metrics.Rejections.WithLabelValues(op, diagnostic).Inc()
	logger.WarnCtx(ctx, "Call rejected",
		zap.String("operation", op),
		zap.String("reason", domain.Reason(err)),
		zap.String("diagnostic", diagnostic),
		logger.Address("caller", caller),
		zap.Error(err))
}

// admin runs an owner-only state change
func (c *controller) admin(ctx context.Context, op string, caller common.Address, apply func(state *domain.ContractState) error) error {
	err := c.store.Execute(ctx, func(tx store.Tx) error {
		state, err := tx.State()
		if err != nil {
			return err
		}
		if err := requireOwner(state, caller); err != nil {
			return err
		}
		if err := apply(state); err != nil {
			return err
		}
		return tx.SaveState(state)
	})
	if err != nil {
		c.reject(ctx, op, caller, err)
		return err
	}

	c.metrics.AdminChanges.WithLabelValues(op).Inc()
	return nil
}

func (c *controller) SetPrice(ctx context.Context, caller common.Address, amount *big.Int) error {
	err := c.admin(ctx, OpSetPrice, caller, func(state *domain.ContractState) error {
		next, err := pricing.SetBasePrice(state.Pricing, amount)
		if err != nil {
			return err
		}
		state.Pricing = next
		return nil
	})
	if err == nil {
		logger.InfoCtx(ctx, "Base price updated", zap.String("base_price", amount.String()))
	}
	return err
}

func (c *controller) SetDevelopmentFee(ctx context.Context, caller common.Address, amount *big.Int) error {
	err := c.admin(ctx, OpSetDevelopmentFee, caller, func(state *domain.ContractState) error {
		next, err := pricing.SetDevelopmentFee(state.Pricing, amount)
		if err != nil {
			return err
		}
		state.Pricing = next
		return nil
	})
	if err == nil {
		logger.InfoCtx(ctx, "Development fee updated", zap.String("development_fee", amount.String()))
	}
	return err
}

func (c *controller) SetCranes(ctx context.Context, caller, collection common.Address) error {
	err := c.admin(ctx, OpSetCranes, caller, func(state *domain.ContractState) error {
		state.Cranes = collection
		return nil
	})
	if err != nil {
		return err
	}

	if domain.IsZeroAddress(collection) {
		logger.WarnCtx(ctx, "Companion collection cleared, issuance is disabled")
	} else {
		logger.InfoCtx(ctx, "Companion collection updated", logger.Address("cranes", collection))
	}
	return nil
}

func (c *controller) Withdraw(ctx context.Context, caller common.Address) (*big.Int, error) {
	var amount *big.Int
	err := c.admin(ctx, OpWithdraw, caller, func(state *domain.ContractState) error {
		amount = state.Collected
		state.Collected = new(big.Int)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Collected payments withdrawn",
		logger.Address("owner", caller),
		zap.String("amount", amount.String()))
	return amount, nil
}

func (c *controller) Transfer(ctx context.Context, caller, to common.Address, id domain.TokenID) error {
	err := c.store.Execute(ctx, func(tx store.Tx) error {
		token, err := tx.Token(id)
		if err != nil {
			return err
		}
		if token.Owner != caller {
			return fmt.Errorf("%w: token %s", domain.ErrNotTokenOwner, id)
		}
		if err := requireRecipient(to); err != nil {
			return err
		}
		return tx.UpdateTokenOwner(id, to)
	})
	if err != nil {
		c.reject(ctx, OpTransfer, caller, err)
		return err
	}

	logger.InfoCtx(ctx, "Token transferred",
		zap.Stringer("token_id", id),
		logger.Address("from", caller),
		logger.Address("to", to))
	return nil
}

func (c *controller) TotalSupply(ctx context.Context) (uint64, error) {
	state, err := c.store.State(ctx)
	if err != nil {
		return 0, err
	}
	return supply.Total(state.Supply), nil
}

func (c *controller) CurrentYearTotalSupply(ctx context.Context) (uint64, error) {
	state, err := c.store.State(ctx)
	if err != nil {
		return 0, err
	}
	return supply.CurrentYearTotal(state.Supply), nil
}

func (c *controller) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return c.store.BalanceOf(ctx, owner)
}

func (c *controller) OwnerOf(ctx context.Context, id domain.TokenID) (common.Address, error) {
	token, err := c.store.Token(ctx, id)
	if err != nil {
		return common.Address{}, err
	}
	return token.Owner, nil
}

func (c *controller) RequiredPayment(ctx context.Context) (*big.Int, error) {
	state, err := c.store.State(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.RequiredPayment(state.Pricing, state.Supply.TotalIssued), nil
}

func (c *controller) Info(ctx context.Context) (*Info, error) {
	state, err := c.store.State(ctx)
	if err != nil {
		return nil, err
	}
	return &Info{
		Name:                   domain.CollectionName,
		Symbol:                 domain.CollectionSymbol,
		Owner:                  state.Owner,
		Cranes:                 state.Cranes,
		TotalSupply:            supply.Total(state.Supply),
		CurrentYearTotalSupply: supply.CurrentYearTotal(state.Supply),
		YearAnchor:             state.Supply.YearAnchor,
		BasePrice:              state.Pricing.BasePrice,
		DevelopmentFee:         state.Pricing.DevelopmentFee,
		RequiredPayment:        pricing.RequiredPayment(state.Pricing, state.Supply.TotalIssued),
		Collected:              state.Collected,
	}, nil
}

func (c *controller) Token(ctx context.Context, id domain.TokenID) (*domain.Token, error) {
	return c.store.Token(ctx, id)
}

func (c *controller) TokenURI(ctx context.Context, id domain.TokenID) (string, error) {
	if _, err := c.store.Token(ctx, id); err != nil {
		return "", err
	}
	return c.renderer.TokenURI(id)
}

func (c *controller) Image(ctx context.Context, id domain.TokenID) ([]byte, error) {
	if _, err := c.store.Token(ctx, id); err != nil {
		return nil, err
	}
	return c.renderer.SVG(id), nil
}

func requireOwner(state *domain.ContractState, caller common.Address) error {
	if caller != state.Owner {
		return fmt.Errorf("%w: %s", domain.ErrNotOwner, caller.Hex())
	}
	return nil
}

func requireRecipient(recipient common.Address) error {
	if domain.IsZeroAddress(recipient) {
		return fmt.Errorf("%w: zero address", domain.ErrInvalidRecipient)
	}
	return nil
}
