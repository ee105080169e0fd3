package di

import (
	"portfolio-backend/application/services"
	"portfolio-backend/infrastructure/config"
	"portfolio-backend/interfaces/http/rest"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Subscriptions *services.SubscriptionService
	Router        *rest.Router
}
