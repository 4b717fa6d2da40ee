package event

import (
	"context"

	"github.com/arenda/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuditLogHandler writes every published domain event to the structured log.
// It subscribes as a wildcard handler and serves as the audit trail until an
// external notification channel is attached.
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates a new AuditLogHandler
func NewAuditLogHandler(logger *zap.Logger) *AuditLogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogHandler{logger: logger}
}

// Handle logs the event with its aggregate coordinates
func (h *AuditLogHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice so the handler receives all events
func (h *AuditLogHandler) EventTypes() []string {
	return nil
}

// Ensure AuditLogHandler implements EventHandler
var _ shared.EventHandler = (*AuditLogHandler)(nil)
