package pubsub

import (
	"context"
	"log/slog"
)

// noopTransport drops events when publishing is disabled.
type noopTransport struct {
	logger *slog.Logger
}

func (t *noopTransport) name() string { return "noop" }

func (t *noopTransport) send(ctx context.Context, msg *message) error {
	t.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("eventType", msg.Attributes[AttrEventType]),
	)

	return nil
}

func (t *noopTransport) close() error { return nil }
