package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAudit publishes an audit event to Kafka. Publishing is
// best-effort: a nil writer or a broker failure is logged and never fails
// the mutation it describes.
func publishAudit(ctx context.Context, w KafkaWriter, action, actorID, subject, detail string) {
	if w == nil {
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Action:    action,
		ActorID:   actorID,
		Subject:   subject,
		Detail:    detail,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "action", action, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "action", action, "error", err)
		return
	}

	logger.Log.Infow("audit event published", "action", action, "subject", subject)
}
