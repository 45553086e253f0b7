package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishTimeout time.Duration // total retry budget per event
}

type publisher struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	prefix  string
	timeout time.Duration
	json    adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = "rustaceans"
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &publisher{
		nc:      nc,
		js:      js,
		prefix:  prefix,
		timeout: timeout,
		json:    jsonAdapter,
	}, nil
}

// PublishIssuance publishes an issuance event, retrying with exponential backoff.
// The event id is used as the JetStream message id so retries are deduplicated.
func (p *publisher) PublishIssuance(ctx context.Context, event *domain.IssuanceEvent) error {
	logger.DebugCtx(ctx, "Publishing issuance event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := p.buildSubject(event)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = p.timeout

	var attemptCount int
	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.EventID))
		return err
	}
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Issuance publish failed, retrying",
			zap.Error(err),
			zap.String("subject", subject),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to publish event after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
func (p *publisher) buildSubject(event *domain.IssuanceEvent) string {
	// Format: {prefix}.issuance.{kind}
	// e.g., rustaceans.issuance.craft_friend
	return fmt.Sprintf("%s.issuance.%s", p.prefix, event.Kind)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
