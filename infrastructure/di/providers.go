package di

import (
	"context"
	"fmt"
	"net/http"

	"portfolio-backend/application/ports"
	"portfolio-backend/application/services"
	"portfolio-backend/infrastructure/config"
	"portfolio-backend/infrastructure/subscriber"
	"portfolio-backend/interfaces/http/rest"
	"portfolio-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance. Lambda always gets the JSON
// production encoder so CloudWatch Logs can parse the fields.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() || cfg.IsLambda {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	if cfg.LambdaFunctionName != "" {
		logger = logger.With(zap.String("function", cfg.LambdaFunctionName))
	}
	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideCloudWatchClient creates a CloudWatch client, or nil when metrics
// are disabled so that nothing is published.
func ProvideCloudWatchClient(ctx context.Context, cfg *config.Config) (observability.MetricsAPI, error) {
	if !cfg.EnableMetrics {
		return nil, nil
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awscloudwatch.NewFromConfig(awsCfg), nil
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client observability.MetricsAPI, cfg *config.Config, logger *zap.Logger) ports.MetricsRecorder {
	namespace := fmt.Sprintf("%s/%s", cfg.MetricsNamespace, cfg.Environment)
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideHTTPClient creates the client used for upstream calls
func ProvideHTTPClient(cfg *config.Config) *http.Client {
	client := &http.Client{Timeout: cfg.UpstreamTimeout}
	if cfg.EnableTracing {
		return observability.InstrumentHTTPClient(client)
	}
	return client
}

// ProvideSubscriberGateway creates the upstream subscriber client
func ProvideSubscriberGateway(client *http.Client, cfg *config.Config, logger *zap.Logger) ports.SubscriberGateway {
	return subscriber.NewKitClient(
		client,
		cfg.NewsletterAPIURL,
		cfg.NewsletterAPIKey,
		cfg.NewsletterAPIKeyHeader,
		logger,
	)
}

// ProvideSubscriptionService creates the signup service
func ProvideSubscriptionService(
	gateway ports.SubscriberGateway,
	metrics ports.MetricsRecorder,
	logger *zap.Logger,
) *services.SubscriptionService {
	return services.NewSubscriptionService(gateway, metrics, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(service *services.SubscriptionService, cfg *config.Config, logger *zap.Logger) *rest.Router {
	return rest.NewRouter(service, cfg.AllowedOrigins, logger)
}
