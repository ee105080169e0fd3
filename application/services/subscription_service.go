package services

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/application/ports"
	"portfolio-backend/domain/newsletter"
	apperrors "portfolio-backend/pkg/errors"

	"go.uber.org/zap"
)

// Messages returned to the signup form for rejected input.
const (
	MessageMissingFields = "Missing required fields: email and firstName"
	MessageInvalidEmail  = "Invalid email format"
)

// SubscriptionService validates newsletter signups and forwards them to the
// subscriber service. It holds no per-request state.
type SubscriptionService struct {
	gateway ports.SubscriberGateway
	metrics ports.MetricsRecorder
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription service. metrics may
// be nil.
func NewSubscriptionService(
	gateway ports.SubscriberGateway,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
	}
}

// Subscribe validates req and, when it is valid, forwards it upstream
// exactly once. The upstream reply is returned as-is, whatever its status.
func (s *SubscriptionService) Subscribe(ctx context.Context, req newsletter.SubscriptionRequest) (*newsletter.UpstreamResponse, error) {
	start := time.Now()

	resp, err := s.subscribe(ctx, req)

	if s.metrics != nil {
		s.metrics.RecordSubscription(ctx, outcome(err), time.Since(start))
	}
	return resp, err
}

func (s *SubscriptionService) subscribe(ctx context.Context, req newsletter.SubscriptionRequest) (*newsletter.UpstreamResponse, error) {
	if err := req.Validate(); err != nil {
		switch {
		case errors.Is(err, newsletter.ErrMissingFields):
			return nil, apperrors.NewValidationError(MessageMissingFields).WithCause(err)
		case errors.Is(err, newsletter.ErrInvalidEmail):
			return nil, apperrors.NewValidationError(MessageInvalidEmail).WithCause(err)
		default:
			return nil, apperrors.NewInternalError("failed to validate subscription").WithCause(err)
		}
	}

	resp, err := s.gateway.CreateSubscriber(ctx, req.Subscriber())
	if err != nil {
		if errors.Is(err, newsletter.ErrMissingCredential) {
			return nil, apperrors.NewConfigurationError("newsletter API key is not configured").WithCause(err)
		}
		return nil, apperrors.NewExternalError("subscriber-api", err)
	}

	s.logger.Info("Subscription forwarded",
		zap.Int("upstream_status", resp.StatusCode),
	)
	return resp, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return ports.OutcomeForwarded
	case apperrors.IsValidation(err):
		return ports.OutcomeRejected
	case apperrors.IsType(err, apperrors.ErrorTypeConfiguration):
		return ports.OutcomeMisconfigured
	default:
		return ports.OutcomeFailed
	}
}
