package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// MetricsAPI is the subset of the CloudWatch client used for publishing.
type MetricsAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes newsletter proxy metrics to CloudWatch
type Metrics struct {
	namespace string
	client    MetricsAPI
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance. A nil client disables
// publishing.
func NewMetrics(namespace string, client MetricsAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordSubscription records one signup with its outcome and latency
func (m *Metrics) RecordSubscription(ctx context.Context, outcome string, latency time.Duration) {
	if m == nil || m.client == nil {
		return
	}

	now := time.Now()
	dimensions := []types.Dimension{
		{
			Name:  aws.String("Outcome"),
			Value: aws.String(outcome),
		},
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("SubscriptionRequests"),
				Dimensions: dimensions,
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String("SubscriptionLatency"),
				Dimensions: dimensions,
				Value:      aws.Float64(float64(latency.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  aws.Time(now),
			},
		},
	}

	// Metrics never fail the request.
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to publish metrics", zap.Error(err))
	}
}
