package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mbraun22/privatechef/internal/events"
)

// NotificationService emits notifications for booking lifecycle events.
// Delivery is a log stub; the hosted deployment fronts this with an
// external mailer.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingStatusChanged, n.handleBookingStatusChanged)
}

func (n *NotificationService) handleBookingCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCreated",
		zap.String("booking_id", event.BookingID),
		zap.String("chef_id", event.ChefID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleBookingStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingStatusChanged",
		zap.String("booking_id", event.BookingID),
		zap.String("chef_id", event.ChefID),
		zap.Any("payload", event.Payload))
	return nil
}
