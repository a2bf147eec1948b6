// Package notifier delivers customer emails over SMTP. With no SMTP host or
// credentials configured it degrades to logging the would-be message, so a
// development setup never needs a mail account.
package notifier

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config SMTP连接配置
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer implements service.Notifier over SMTP.
type Mailer struct {
	cfg    Config
	logger *zap.Logger
}

// NewMailer 创建邮件通知器
func NewMailer(cfg Config, logger *zap.Logger) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Mailer{cfg: cfg, logger: logger}
}

var statusMessages = map[string]string{
	"pending":   "is pending review. We will update you soon.",
	"approved":  "has been approved! We will contact you shortly to confirm details.",
	"rejected":  "has been rejected. Please contact us for more information.",
	"scheduled": "has been scheduled! Check your dashboard for trip details.",
}

func (m *Mailer) enabled() bool {
	return m.cfg.Host != "" && m.cfg.Username != ""
}

// SendWelcome 发送新请求确认邮件
func (m *Mailer) SendWelcome(ctx context.Context, email, name string, requestID uint) error {
	if !m.enabled() {
		m.logger.Info("Welcome email simulated",
			zap.String("to", email),
			zap.Uint("request_id", requestID),
		)
		return nil
	}

	subject := fmt.Sprintf("Trip Request #%d Received - Coach Service", requestID)
	body := fmt.Sprintf(
		"<h2>Hello %s,</h2>"+
			"<p>We have received your trip request <strong>#%d</strong>. "+
			"Our coordinator will review it shortly.</p>"+
			"<p>You can check your request status anytime with your phone number or email address.</p>"+
			"<p>Best regards,<br><strong>Coach Service Team</strong></p>",
		name, requestID,
	)

	return m.send(email, subject, body)
}

// SendStatusUpdate 发送状态变更通知邮件
func (m *Mailer) SendStatusUpdate(ctx context.Context, email, name, status string, requestID uint) error {
	if !m.enabled() {
		m.logger.Info("Status email simulated",
			zap.String("to", email),
			zap.Uint("request_id", requestID),
			zap.String("status", status),
		)
		return nil
	}

	msg, ok := statusMessages[status]
	if !ok {
		msg = "status has been updated."
	}

	subject := fmt.Sprintf("Trip Request %s - Coach Service", capitalize(status))
	body := fmt.Sprintf(
		"<h2>Hello %s,</h2>"+
			"<p>Your trip request <strong>#%d</strong> %s</p>"+
			"<p>Current status: <strong>%s</strong></p>"+
			"<p>Best regards,<br><strong>Coach Service Team</strong></p>",
		name, requestID, msg, status,
	)

	return m.send(email, subject, body)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
