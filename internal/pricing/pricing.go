// Package pricing computes the payment required to craft a token.
package pricing

import (
	"fmt"
	"math/big"

	"github.com/feral-file/rustaceans/internal/domain"
)

const bpsDenominator = 10_000

// RequiredPayment returns the payment a craft needs right now, in wei:
// the base price plus the development fee. While fewer than EarlySupply
// tokens exist the base price is reduced by EarlyDiscountBps.
func RequiredPayment(p domain.Pricing, totalIssued uint64) *big.Int {
	base := valueOrZero(p.BasePrice)
	if p.EarlySupply > 0 && totalIssued < p.EarlySupply && p.EarlyDiscountBps > 0 {
		bps := p.EarlyDiscountBps
		if bps > bpsDenominator {
			bps = bpsDenominator
		}
		discount := new(big.Int).Mul(base, new(big.Int).SetUint64(bps))
		discount.Quo(discount, big.NewInt(bpsDenominator))
		base = new(big.Int).Sub(base, discount)
	}
	return new(big.Int).Add(base, valueOrZero(p.DevelopmentFee))
}

// CheckPayment returns domain.ErrPaymentTooLow when payment is below the required payment.
// Any excess is accepted.
func CheckPayment(p domain.Pricing, totalIssued uint64, payment *big.Int) error {
	if payment == nil || payment.Sign() < 0 {
		return fmt.Errorf("%w: payment must be a non-negative amount", domain.ErrInvalidAmount)
	}
	required := RequiredPayment(p, totalIssued)
	if payment.Cmp(required) < 0 {
		return fmt.Errorf("%w: sent %s wei, required %s wei", domain.ErrPaymentTooLow, payment, required)
	}
	return nil
}

// SetBasePrice returns a copy of p with a new base price
func SetBasePrice(p domain.Pricing, amount *big.Int) (domain.Pricing, error) {
	if err := validAmount(amount); err != nil {
		return p, err
	}
	next := p.Clone()
	next.BasePrice = new(big.Int).Set(amount)
	return next, nil
}

// SetDevelopmentFee returns a copy of p with a new development fee
func SetDevelopmentFee(p domain.Pricing, amount *big.Int) (domain.Pricing, error) {
	if err := validAmount(amount); err != nil {
		return p, err
	}
	next := p.Clone()
	next.DevelopmentFee = new(big.Int).Set(amount)
	return next, nil
}

func validAmount(amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf("%w: amount is required", domain.ErrInvalidAmount)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: %s is negative", domain.ErrInvalidAmount, amount)
	}
	return nil
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
