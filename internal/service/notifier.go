package service

import (
	"context"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"go.uber.org/zap"
)

// Notifier receives every shopper-facing outcome; callers also get it back as
// a return value.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n domain.Notification)
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, sessionID string, n domain.Notification) {
	l.logger.Info("notification",
		zap.String("session_id", sessionID),
		zap.String("kind", string(n.Kind)),
		zap.String("message", n.Message),
	)
}
