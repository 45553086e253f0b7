package messaging

import (
	"context"

	"github.com/feral-file/rustaceans/internal/domain"
)

// Publisher defines the interface for announcing committed issuances
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishIssuance publishes an issuance event to the message broker
	PublishIssuance(ctx context.Context, event *domain.IssuanceEvent) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishIssuance(context.Context, *domain.IssuanceEvent) error {
	return nil
}

func (nopPublisher) Close() {}
