package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/mail"
)

// NotificationService turns account lifecycle events into outbound mail.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     mail.Sender
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, sender mail.Sender, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		sender:     sender,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventAccountActivated, n.handleAccountActivated)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
	n.dispatcher.Subscribe(events.EventPasswordReset, n.handlePasswordReset)
}

func (n *NotificationService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AccountRegisteredPayload)
	if !ok {
		n.logger.Warn("AccountRegistered: unexpected payload", zap.String("event_id", event.ID))
		return nil
	}
	n.logger.Info("AccountRegistered", zap.String("email", event.Email))

	err := n.sender.Send(ctx, event.Email, mail.TemplateActivation, map[string]string{
		"Name":           payload.Name,
		"ActivationCode": payload.ActivationCode,
	})
	if err != nil {
		n.logger.Warn("send activation mail failed", zap.String("email", event.Email), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleAccountActivated(_ context.Context, event events.Event) error {
	n.logger.Info("AccountActivated", zap.String("email", event.Email), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		n.logger.Warn("PasswordResetRequested: unexpected payload", zap.String("event_id", event.ID))
		return nil
	}
	n.logger.Info("PasswordResetRequested", zap.String("email", event.Email))

	err := n.sender.Send(ctx, event.Email, mail.TemplateForgotPassword, map[string]string{
		"Name":     payload.Name,
		"ResetURL": payload.ResetURL,
	})
	if err != nil {
		n.logger.Warn("send reset mail failed", zap.String("email", event.Email), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handlePasswordReset(_ context.Context, event events.Event) error {
	n.logger.Info("PasswordReset", zap.String("email", event.Email), zap.Any("payload", event.Payload))
	return nil
}
