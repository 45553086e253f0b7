package domain

import "errors"

var (
	// ErrNotOwner is returned when a non-owner calls an owner-restricted operation
	ErrNotOwner = errors.New("caller is not the contract owner")

	// ErrInsufficientCranes is returned when the companion balance gate is not met
	ErrInsufficientCranes = errors.New("not enough cranes")

	// ErrNoCranesMinted is joined with ErrInsufficientCranes when the companion collection has no tokens at all
	ErrNoCranesMinted = errors.New("companion collection has no tokens")

	// ErrCranesNotConfigured is joined with ErrInsufficientCranes when no companion collection address is set
	ErrCranesNotConfigured = errors.New("companion collection is not configured")

	// ErrCranesUnavailable is joined with ErrInsufficientCranes when the companion collection cannot be read
	ErrCranesUnavailable = errors.New("companion collection is unavailable")

	// ErrPaymentTooLow is returned when the attached payment is below the required payment
	ErrPaymentTooLow = errors.New("payment below required price")

	// ErrUnknownToken is returned when a token id was never issued
	ErrUnknownToken = errors.New("token does not exist")

	// ErrInvalidRecipient is returned when a token would be assigned to the zero address
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrInvalidAmount is returned for nil or negative amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotTokenOwner is returned when a transfer is requested by an address that does not hold the token
	ErrNotTokenOwner = errors.New("caller does not hold the token")
)

// Reason strings surfaced to callers on rejection
const (
	ReasonNotOwner            = "NOT_OWNER"
	ReasonNotEnoughCranes     = "NOT_ENOUGH_CRANES"
	ReasonNoCranesMinted      = "NO_CRANES_MINTED"
	ReasonCranesNotConfigured = "CRANES_NOT_CONFIGURED"
	ReasonCranesUnavailable   = "CRANES_UNAVAILABLE"
	ReasonPriceNotMet         = "PRICE_NOT_MET"
	ReasonUnknownToken        = "UNKNOWN_TOKEN"
	ReasonInvalidRecipient    = "INVALID_RECIPIENT"
	ReasonInvalidAmount       = "INVALID_AMOUNT"
	ReasonNotTokenOwner       = "NOT_TOKEN_OWNER"
	ReasonInternal            = "INTERNAL"
)

// reasons is ordered so that the user-facing reason wins over the diagnostic ones
var reasons = []struct {
	err    error
	reason string
}{
	{ErrNotOwner, ReasonNotOwner},
	{ErrInsufficientCranes, ReasonNotEnoughCranes},
	{ErrPaymentTooLow, ReasonPriceNotMet},
	{ErrUnknownToken, ReasonUnknownToken},
	{ErrInvalidRecipient, ReasonInvalidRecipient},
	{ErrInvalidAmount, ReasonInvalidAmount},
	{ErrNotTokenOwner, ReasonNotTokenOwner},
}

// Reason returns the machine-readable rejection reason for err.
// Errors that are not rejections map to ReasonInternal.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternal
}

// Diagnostic returns the most specific reason for err, distinguishing the
// companion-collection failure modes that share the NOT_ENOUGH_CRANES rejection.
func Diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrCranesNotConfigured):
		return ReasonCranesNotConfigured
	case errors.Is(err, ErrCranesUnavailable):
		return ReasonCranesUnavailable
	case errors.Is(err, ErrNoCranesMinted):
		return ReasonNoCranesMinted
	}
	return Reason(err)
}

// IsRejection reports whether err is a precondition failure rather than an internal error
func IsRejection(err error) bool {
	return err != nil && Reason(err) != ReasonInternal
}
