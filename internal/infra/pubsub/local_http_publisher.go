package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"agrimatch/internal/domain/constants"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/agrimatch-worker"

// PushMessage mirrors the body Google Pub/Sub POSTs to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeData returns the raw payload of a push message.
func (m *PushMessage) DecodeData() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	return data, nil
}

// localHTTPTransport simulates Pub/Sub push delivery by POSTing to a local worker.
type localHTTPTransport struct {
	endpoint   string
	httpClient *http.Client
}

func newLocalHTTPTransport(endpoint string) *localHTTPTransport {
	return &localHTTPTransport{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *localHTTPTransport) name() string { return constants.PubSubProviderLocal }

func (t *localHTTPTransport) send(ctx context.Context, msg *message) error {
	push := PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.Data)
	push.Message.Attributes = msg.Attributes
	push.Message.MessageID = msg.ID
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.Attributes[AttrRequestID]; requestID != "" {
		req.Header.Set(constants.HeaderRequestID, requestID)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

func (t *localHTTPTransport) close() error { return nil }
