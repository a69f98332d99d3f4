package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/account-pages/internal/logger"
	"github.com/sbilibin2017/account-pages/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishAccountEvent publishes a user lifecycle event to Kafka. Publishing
// is best effort: a nil writer skips it and failures are only logged.
func publishAccountEvent(ctx context.Context, w KafkaWriter, eventType string, user *models.User) {
	if w == nil {
		return
	}

	event := models.AccountEvent{
		Type:       eventType,
		UserID:     user.ID.Hex(),
		Username:   user.Username,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal account event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish account event", "type", eventType, "user_id", event.UserID, "error", err)
		return
	}

	logger.Log.Infow("account event published", "type", eventType, "user_id", event.UserID)
}
