package pricing

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/domain"
)

func defaults() domain.Pricing {
	return domain.Pricing{
		BasePrice:      domain.DefaultBasePrice(),
		DevelopmentFee: domain.DefaultDevelopmentFee(),
	}
}

func TestRequiredPayment_Default(t *testing.T) {
	expected := big.NewInt(2 * params.Ether / 100) // 0.02 ether
	assert.Equal(t, 0, RequiredPayment(defaults(), 0).Cmp(expected))
	assert.Equal(t, 0, RequiredPayment(defaults(), 1_000_000).Cmp(expected))
}

func TestRequiredPayment_EarlyDiscount(t *testing.T) {
	p := domain.Pricing{
		BasePrice:        big.NewInt(1000),
		DevelopmentFee:   big.NewInt(100),
		EarlySupply:      10,
		EarlyDiscountBps: 2500,
	}

	assert.Equal(t, "850", RequiredPayment(p, 0).String())
	assert.Equal(t, "850", RequiredPayment(p, 9).String())
	assert.Equal(t, "1100", RequiredPayment(p, 10).String())

	p.EarlyDiscountBps = 20_000
	assert.Equal(t, "100", RequiredPayment(p, 0).String(), "discount is capped at the base price")
}

func TestCheckPayment(t *testing.T) {
	p := defaults()
	required := RequiredPayment(p, 0)

	tests := []struct {
		name    string
		payment *big.Int
		wantErr error
	}{
		{"below", new(big.Int).Sub(required, big.NewInt(1)), domain.ErrPaymentTooLow},
		{"zero", big.NewInt(0), domain.ErrPaymentTooLow},
		{"base only", domain.DefaultBasePrice(), domain.ErrPaymentTooLow},
		{"exact", new(big.Int).Set(required), nil},
		{"above", new(big.Int).Add(required, big.NewInt(params.Ether)), nil},
		{"nil", nil, domain.ErrInvalidAmount},
		{"negative", big.NewInt(-1), domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPayment(p, 0, tt.payment)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetters_CopyOnWrite(t *testing.T) {
	p := defaults()

	withBase, err := SetBasePrice(p, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "5", withBase.BasePrice.String())
	assert.Equal(t, 0, p.BasePrice.Cmp(domain.DefaultBasePrice()), "original is untouched")

	withFee, err := SetDevelopmentFee(withBase, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, "12", RequiredPayment(withFee, 0).String())
	assert.Equal(t, 0, withBase.DevelopmentFee.Cmp(domain.DefaultDevelopmentFee()))

	amount := big.NewInt(9)
	withBase, err = SetBasePrice(p, amount)
	require.NoError(t, err)
	amount.SetInt64(1)
	assert.Equal(t, "9", withBase.BasePrice.String(), "setter copies its argument")
}

func TestSetters_Invalid(t *testing.T) {
	p := defaults()

	_, err := SetBasePrice(p, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = SetBasePrice(p, big.NewInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = SetDevelopmentFee(p, big.NewInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	// zero is a valid price
	zero, err := SetDevelopmentFee(p, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, 0, RequiredPayment(zero, 0).Cmp(domain.DefaultBasePrice()))
}
