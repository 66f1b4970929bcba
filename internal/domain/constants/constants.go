// Package constants holds values shared across layers.
package constants

// Pub/Sub providers selectable in configuration.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// HeaderRequestID carries the request id between services.
const HeaderRequestID = "X-Request-Id"
