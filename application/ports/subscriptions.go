package ports

import (
	"context"
	"time"

	"portfolio-backend/domain/newsletter"
)

// SubscriberGateway forwards a signup to the third-party subscriber service.
// Implementations make at most one outbound call and return
// newsletter.ErrMissingCredential without any network I/O when no API key
// is configured.
type SubscriberGateway interface {
	CreateSubscriber(ctx context.Context, sub newsletter.Subscriber) (*newsletter.UpstreamResponse, error)
}

// Subscription outcomes reported to the metrics recorder.
const (
	OutcomeForwarded     = "forwarded"
	OutcomeRejected      = "rejected"
	OutcomeMisconfigured = "misconfigured"
	OutcomeFailed        = "failed"
)

// MetricsRecorder records one datum per handled signup.
type MetricsRecorder interface {
	RecordSubscription(ctx context.Context, outcome string, latency time.Duration)
}
