package notification

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMNotificationService delivers pushes through Firebase Cloud Messaging.
// Each owner identity maps to a topic the client apps subscribe to on login,
// so the engine never needs to resolve device tokens itself.
type FCMNotificationService struct {
	Client *messaging.Client
	Logger *zap.Logger
}

// NewFCMNotificationService constructs the FCM-backed notification service.
func NewFCMNotificationService(client *messaging.Client, logger *zap.Logger) *FCMNotificationService {
	return &FCMNotificationService{Client: client, Logger: logger}
}

func (s *FCMNotificationService) Notify(ctx context.Context, ownerIdentity string, event Event, title, body string, data map[string]string) error {
	if s.Client == nil {
		return fmt.Errorf("notification: FCM client not initialized")
	}
	if ownerIdentity == "" {
		return fmt.Errorf("notification: missing owner identity")
	}

	if data == nil {
		data = map[string]string{}
	}
	data["event"] = string(event)

	msg := &messaging.Message{
		Topic: ownerTopic(ownerIdentity),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.Client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("notification: failed to send %s push to %s: %w", event, ownerIdentity, err)
	}

	if s.Logger != nil {
		s.Logger.Info("push notification sent",
			zap.String("owner", ownerIdentity),
			zap.String("event", string(event)),
			zap.String("messageID", id))
	}
	return nil
}

// ownerTopic maps an opaque owner identity onto an FCM-legal topic name.
func ownerTopic(ownerIdentity string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.' || r == '~':
			return r
		default:
			return '-'
		}
	}, ownerIdentity)
	return "owner-" + sanitized
}
