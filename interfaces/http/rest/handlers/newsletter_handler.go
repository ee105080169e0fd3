package handlers

import (
	"net/http"

	"portfolio-backend/application/services"
	"portfolio-backend/domain/newsletter"
	apperrors "portfolio-backend/pkg/errors"

	"go.uber.org/zap"
)

// maxBodyBytes bounds the signup payload.
const maxBodyBytes = 64 << 10

// NewsletterHandler handles newsletter signup requests
type NewsletterHandler struct {
	service *services.SubscriptionService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(service *services.SubscriptionService, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		errors:  apperrors.NewErrorHandler(logger),
		logger:  logger,
	}
}

// Subscribe handles every request to the proxy. OPTIONS is a CORS
// preflight, POST forwards a signup and anything else is rejected.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
	default:
		h.errors.Handle(w, r, apperrors.NewMethodNotAllowedError())
		return
	}

	req, err := newsletter.DecodeSubscriptionRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.errors.Handle(w, r, apperrors.Wrap(err, "failed to decode subscription body"))
		return
	}

	resp, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		h.logger.Error("Failed to write upstream response", zap.Error(err))
	}
}
