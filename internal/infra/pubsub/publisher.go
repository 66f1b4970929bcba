package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"agrimatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attributes set on every published event.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
	AttrPairingID = "pairing_id"
)

// message is one encoded event ready to hand to a transport.
type message struct {
	ID         string
	Key        string
	Data       []byte
	Attributes map[string]string
}

// transport delivers encoded messages to a broker.
type transport interface {
	name() string
	send(ctx context.Context, msg *message) error
	close() error
}

// eventPublisher wraps domain events in an EventEnvelope and hands them to a transport.
type eventPublisher struct {
	transport transport
	logger    *slog.Logger
	now       func() time.Time
}

func newEventPublisher(t transport, logger *slog.Logger) *eventPublisher {
	return &eventPublisher{
		transport: t,
		logger:    logger,
		now:       time.Now,
	}
}

// PublishPairingEvent publishes a pairing status change keyed by pairing ID.
func (p *eventPublisher) PublishPairingEvent(ctx context.Context, event *service.PairingEvent) error {
	if event == nil {
		return errors.New("pairing event is nil")
	}

	msg, err := p.encode(service.EventTypePairingStatusChanged, event.RequestID, event.PairingID, event)
	if err != nil {
		return err
	}
	msg.Attributes[AttrPairingID] = event.PairingID

	return p.publish(ctx, msg)
}

// PublishSweepRequest publishes a request to run the expiration sweep.
func (p *eventPublisher) PublishSweepRequest(ctx context.Context, req *service.SweepRequest) error {
	if req == nil {
		return errors.New("sweep request is nil")
	}

	msg, err := p.encode(service.EventTypeSweepRequested, req.RequestID, "sweep", req)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

// Close releases transport resources.
func (p *eventPublisher) Close() error {
	return p.transport.close()
}

func (p *eventPublisher) encode(eventType, requestID, key string, payload any) (*message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s payload", eventType)
	}

	data, err := json.Marshal(service.EventEnvelope{
		EventType:  eventType,
		RequestID:  requestID,
		OccurredAt: p.now().UTC(),
		Payload:    body,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event envelope")
	}

	attributes := map[string]string{AttrEventType: eventType}
	if requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	return &message{
		ID:         uuid.NewString(),
		Key:        key,
		Data:       data,
		Attributes: attributes,
	}, nil
}

func (p *eventPublisher) publish(ctx context.Context, msg *message) error {
	if err := p.transport.send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to publish %s via %s", msg.Attributes[AttrEventType], p.transport.name())
	}

	p.logger.Debug("Event published",
		slog.String("transport", p.transport.name()),
		slog.String("eventType", msg.Attributes[AttrEventType]),
		slog.String("messageId", msg.ID),
	)

	return nil
}

// DecodeEnvelope parses an envelope produced by any publisher.
func DecodeEnvelope(data []byte) (*service.EventEnvelope, error) {
	var envelope service.EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode event envelope")
	}
	if envelope.EventType == "" {
		return nil, errors.New("event envelope has no event type")
	}

	return &envelope, nil
}
