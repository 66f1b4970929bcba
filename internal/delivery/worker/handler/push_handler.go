package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/infra/pubsub"
	"agrimatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push deliveries for the worker.
type PushHandler struct {
	audience  string
	validate  tokenValidator
	logger    *slog.Logger
	sweeperUC usecase.SweeperUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	SweeperUC usecase.SweeperUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// only when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:  audience,
		validate:  idtoken.Validate,
		logger:    params.Logger,
		sweeperUC: params.SweeperUC,
	}
}

// HandlePush acks with 200 once a message is handled or can never be handled,
// and answers 503 so Pub/Sub redelivers after a transient failure.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push pubsub.PushMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := push.DecodeData()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	envelope, err := pubsub.DecodeEnvelope(data)
	if err != nil {
		h.logger.Error("[Worker] Failed to parse event envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &push, envelope)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", push.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	switch envelope.EventType {
	case service.EventTypeSweepRequested:
		return h.handleSweep(ctx, c, reqLogger, envelope)
	case service.EventTypePairingStatusChanged:
		h.logPairingEvent(reqLogger, envelope)
	default:
		reqLogger.Warn("[Worker] Ignoring unknown event type", slog.String("event_type", envelope.EventType))
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) handleSweep(ctx context.Context, c echo.Context, logger *slog.Logger, envelope *service.EventEnvelope) error {
	var req service.SweepRequest
	if err := json.Unmarshal(envelope.Payload, &req); err != nil {
		logger.Warn("[Worker] Sweep request payload unreadable, sweeping anyway", slog.Any("error", err))
	}

	out, err := h.sweeperUC.CleanupExpired(ctx)
	if err != nil {
		logger.Error("[Worker] Sweep failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("[Worker] Sweep completed",
		slog.String("requested_by", req.RequestedBy),
		slog.Int64("deleted", out.Deleted),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) logPairingEvent(logger *slog.Logger, envelope *service.EventEnvelope) {
	var event service.PairingEvent
	if err := json.Unmarshal(envelope.Payload, &event); err != nil {
		logger.Warn("[Worker] Pairing event payload unreadable", slog.Any("error", err))

		return
	}

	logger.Info("[Worker] Pairing status changed",
		slog.String("pairing_id", event.PairingID),
		slog.String("side", event.Side),
		slog.String("decision", event.Decision),
		slog.String("status", event.Status),
	)
}

// extractRequestID prefers message attributes, then the envelope, then the
// X-Request-Id of the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, push *pubsub.PushMessage, envelope *service.EventEnvelope) string {
	if requestID := push.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if envelope.RequestID != "" {
		return envelope.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken checks the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(ctx context.Context, req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
