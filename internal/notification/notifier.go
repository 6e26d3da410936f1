package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/notification_mocks.go -package=mocks

// ErrNoRecipients is returned when a notification has no usable address
var ErrNoRecipients = errors.New("notification has no recipients")

// Notification is an email about one record
type Notification struct {
	Recipients    []string
	Subject       string
	Body          string
	ReferenceType string
	ReferenceID   *uuid.UUID
}

// NotifierInterface sends record notifications
type NotifierInterface interface {
	Notify(ctx context.Context, n Notification) error
}

// Notifier sends notifications through a Mailer and logs each attempt as a Communication
type Notifier struct {
	mailer         Mailer
	communications repository.CommunicationRepositoryInterface
	now            func() time.Time
}

// NewNotifier creates a notifier
func NewNotifier(mailer Mailer, communications repository.CommunicationRepositoryInterface) *Notifier {
	return &Notifier{mailer: mailer, communications: communications, now: time.Now}
}

// Notify sends n and records the outcome. The send error is returned after the log entry is written.
func (s *Notifier) Notify(ctx context.Context, n Notification) error {
	recipients := cleanRecipients(n.Recipients)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject":        n.Subject,
		"reference_type": n.ReferenceType,
	})

	sendErr := s.mailer.Send(ctx, Message{To: recipients, Subject: n.Subject, Body: n.Body})

	entry := &models.Communication{
		Subject:       n.Subject,
		Recipients:    strings.Join(recipients, ","),
		Content:       n.Body,
		ReferenceType: n.ReferenceType,
		ReferenceID:   n.ReferenceID,
		Status:        models.CommunicationStatusSent,
		SentAt:        s.now().UTC(),
	}
	if sendErr != nil {
		entry.Status = models.CommunicationStatusError
		entry.ErrorMessage = sendErr.Error()
	}
	entry.Stamp(auth.UserFromContext(ctx))

	if err := s.communications.Create(entry); err != nil {
		log.Warnf("Failed to record communication: %v", err)
	}

	if sendErr != nil {
		return fmt.Errorf("failed to send %q: %w", n.Subject, sendErr)
	}
	log.Debug("Notification sent")
	return nil
}

func cleanRecipients(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, r := range in {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			key := strings.ToLower(part)
			if part == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, part)
		}
	}
	return out
}
