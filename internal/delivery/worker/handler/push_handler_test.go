package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrimatch/config"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/service"
	mockUsecase "agrimatch/internal/mocks/usecase"
	"agrimatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, audience string) (*PushHandler, *mockUsecase.MockSweeperUsecase) {
	t.Helper()

	sweeper := mockUsecase.NewMockSweeperUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{PushAudience: audience}}
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweeperUC: sweeper,
	})

	return h, sweeper
}

func pushBody(t *testing.T, eventType, envelopeRequestID string, attrs map[string]string, payload any) string {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	envelope, err := json.Marshal(service.EventEnvelope{
		EventType:  eventType,
		RequestID:  envelopeRequestID,
		OccurredAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		Payload:    raw,
	})
	require.NoError(t, err)

	body := map[string]any{
		"message": map[string]any{
			"data":        base64.StdEncoding.EncodeToString(envelope),
			"attributes":  attrs,
			"messageId":   "msg-1",
			"publishTime": "2026-03-01T08:00:00Z",
		},
		"subscription": "projects/local/subscriptions/agrimatch-worker",
	}
	out, err := json.Marshal(body)
	require.NoError(t, err)

	return string(out)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_SweepRequested(t *testing.T) {
	h, sweeper := newTestPushHandler(t, "")

	var seenRequestID string
	sweeper.EXPECT().CleanupExpired(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.SweepOutput, error) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return &usecase.SweepOutput{Deleted: 4}, nil
		}).Once()

	body := pushBody(t, service.EventTypeSweepRequested, "req-envelope",
		map[string]string{"request_id": "req-attr"},
		service.SweepRequest{RequestID: "req-envelope", RequestedBy: "matchctl"})

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-attr", seenRequestID)
}

func TestPushHandler_SweepFailureIsRetried(t *testing.T) {
	h, sweeper := newTestPushHandler(t, "")
	sweeper.EXPECT().CleanupExpired(mock.Anything).Return(nil, errors.New("db down")).Once()

	body := pushBody(t, service.EventTypeSweepRequested, "", nil, service.SweepRequest{})

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_EnvelopeRequestIDFallback(t *testing.T) {
	h, sweeper := newTestPushHandler(t, "")

	var seenRequestID string
	sweeper.EXPECT().CleanupExpired(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.SweepOutput, error) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return &usecase.SweepOutput{}, nil
		}).Once()

	body := pushBody(t, service.EventTypeSweepRequested, "req-envelope", nil, service.SweepRequest{})

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-envelope", seenRequestID)
}

func TestPushHandler_AcksOtherEvents(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   any
	}{
		{
			name:      "pairing status changed",
			eventType: service.EventTypePairingStatusChanged,
			payload:   service.PairingEvent{PairingID: "p-1", Side: "buyer", Decision: "accepted", Status: "buyer_accepted"},
		},
		{
			name:      "unknown event",
			eventType: "offering.created",
			payload:   map[string]string{"id": "o-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, "")

			rec := doPush(h, pushBody(t, tt.eventType, "", nil, tt.payload), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	missingType, err := json.Marshal(map[string]any{"payload": map[string]string{}})
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{
			name: "envelope without event type",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString(missingType) + `","messageId":"m"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, "")

			rec := doPush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_TokenVerification(t *testing.T) {
	body := func(t *testing.T) string {
		return pushBody(t, service.EventTypePairingStatusChanged, "", nil, service.PairingEvent{PairingID: "p-1"})
	}

	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		err      error
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "validation error", header: "Bearer tok", err: errors.New("expired"), wantCode: http.StatusUnauthorized},
		{
			name:     "wrong issuer",
			header:   "Bearer tok",
			payload:  &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unverified email",
			header:   "Bearer tok",
			payload:  &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			header:   "Bearer tok",
			payload:  &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, "https://worker.example.com/push")

			var gotAudience string
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				assert.Equal(t, "tok", token)

				return tt.payload, tt.err
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := doPush(h, body(t), header)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.header == "Bearer tok" {
				assert.Equal(t, "https://worker.example.com/push", gotAudience)
			}
		})
	}
}
