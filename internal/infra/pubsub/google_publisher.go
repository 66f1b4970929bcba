package pubsub

import (
	"context"
	"fmt"

	"agrimatch/internal/domain/constants"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleTransport publishes to a Google Cloud Pub/Sub topic.
type googleTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

func newGoogleTransport(ctx context.Context, projectID, topicID string) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googleTransport{
		client:    client,
		publisher: client.Publisher(topicID),
	}, nil
}

func (t *googleTransport) name() string { return constants.PubSubProviderGoogle }

func (t *googleTransport) send(ctx context.Context, msg *message) error {
	result := t.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.Data,
		Attributes: msg.Attributes,
	})

	if _, err := result.Get(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (t *googleTransport) close() error {
	if t.publisher != nil {
		t.publisher.Stop()
	}
	if t.client != nil {
		return errors.WithStack(t.client.Close())
	}

	return nil
}
