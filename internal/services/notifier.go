package services

import (
	"context"
	"log/slog"
	"strings"

	"jobcompass/internal/config"
	"jobcompass/internal/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

const (
	ActionApplicationCreated = "application_created"
	ActionApplicationUpdated = "application_updated"
	ActionStatusChanged      = "status_changed"
	ActionSettingsChanged    = "settings_changed"
)

// ChangeEvent is emitted by a service after its write has committed. The
// notifier is the only consumer; delivery never feeds back into the write.
type ChangeEvent struct {
	UserID uint
	Action string
	Fields []string
	Detail string
}

type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// NotifierService mails users about changes to their account, best-effort.
// Events ride a bounded channel; a full channel drops the event rather than
// slowing the write path, and send failures are logged and forgotten.
type NotifierService struct {
	db     *gorm.DB
	logger *slog.Logger
	mailer Mailer
	events chan ChangeEvent
}

func NewNotifierService(db *gorm.DB, logger *slog.Logger, mailer Mailer) *NotifierService {
	return &NotifierService{
		db:     db,
		logger: logger,
		mailer: mailer,
		events: make(chan ChangeEvent, 100),
	}
}

func (n *NotifierService) Start(ctx context.Context) {
	n.logger.Info("Notifier worker starting")
	for {
		select {
		case event := <-n.events:
			n.deliver(event)
		case <-ctx.Done():
			n.logger.Info("Notifier worker stopping")
			return
		}
	}
}

// Publish queues an event without blocking. Safe to call on a nil notifier.
func (n *NotifierService) Publish(event ChangeEvent) {
	if n == nil {
		return
	}
	select {
	case n.events <- event:
	default:
		n.logger.Warn("Notifier channel full, dropping event", "action", event.Action)
	}
}

func (n *NotifierService) deliver(event ChangeEvent) {
	var user models.User
	if err := n.db.First(&user, event.UserID).Error; err != nil {
		n.logger.Warn("Notifier could not load user", "user_id", event.UserID, "error", err)
		return
	}

	if !user.EmailNotification {
		return
	}
	if n.mailer == nil {
		n.logger.Debug("No mailer configured, skipping notification", "action", event.Action)
		return
	}

	subject, body := composeNotification(user.Name, event)
	if err := n.mailer.Send(user.Email, subject, body); err != nil {
		n.logger.Error("Failed to send notification email", "user_id", event.UserID, "action", event.Action, "error", err)
	}
}

func composeNotification(name string, event ChangeEvent) (subject, body string) {
	switch event.Action {
	case ActionApplicationCreated:
		subject = "JobCompass - Application Added"
	case ActionStatusChanged:
		subject = "JobCompass - Application Status Changed"
	case ActionSettingsChanged:
		subject = "JobCompass - Account Settings Changed"
	default:
		subject = "JobCompass - Account Activity"
	}

	var b strings.Builder
	b.WriteString("Hello " + name + ",\n\n")
	if event.Detail != "" {
		b.WriteString(event.Detail + "\n\n")
	}
	if len(event.Fields) > 0 {
		b.WriteString("Changed fields: " + strings.Join(event.Fields, ", ") + "\n\n")
	}
	b.WriteString("If you did not make this change, please contact support.\n")
	return subject, b.String()
}
