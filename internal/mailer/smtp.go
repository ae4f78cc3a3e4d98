package mailer

import (
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"society-billing-svc/internal/config"
	"society-billing-svc/internal/models"
	"society-billing-svc/pkg/logger"
)

// smtpMailer delivers bill notices through an SMTP relay.
type smtpMailer struct {
	smtp    config.SMTPConfig
	society config.SocietyConfig
	logger  *logger.Logger
}

var _ Mailer = (*smtpMailer)(nil)

// NewSMTPMailer creates a Mailer backed by the configured SMTP relay.
func NewSMTPMailer(smtp config.SMTPConfig, society config.SocietyConfig, logger *logger.Logger) Mailer {
	return &smtpMailer{
		smtp:    smtp,
		society: society,
		logger:  logger,
	}
}

// SendBill formats the notice and attempts delivery. All failures are
// converted to a structured result; nothing propagates past this boundary.
func (m *smtpMailer) SendBill(resident *models.Resident, bill *models.Bill) *SendResult {
	if missing := m.missingSettings(); len(missing) > 0 {
		m.logger.WithField("missing", strings.Join(missing, ", ")).
			Error("Mail relay is not configured")
		return &SendResult{
			Success: false,
			Reason:  ReasonNotConfigured,
			Message: "Mail relay is not configured: missing " + strings.Join(missing, ", "),
		}
	}

	subject, body, err := renderNotice(m.society.Name, m.society.Treasurer, m.society.ContactEmail, resident, bill)
	if err != nil {
		m.logger.WithError(err).Error("Failed to render bill notice")
		return &SendResult{
			Success: false,
			Reason:  ReasonUnknown,
			Message: "Failed to render bill notice: " + err.Error(),
		}
	}

	deliveryID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.smtp.Host)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.smtp.From)
	msg.SetHeader("To", resident.Email)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", deliveryID)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.Username, m.smtp.Password)
	dialer.SSL = m.smtp.Port == 465

	if err := dialer.DialAndSend(msg); err != nil {
		reason, message := classifyError(err)
		m.logger.WithError(err).WithFields(map[string]interface{}{
			"to":     resident.Email,
			"reason": reason,
		}).Error("Failed to send bill notice")
		return &SendResult{
			Success: false,
			Reason:  reason,
			Message: message,
		}
	}

	m.logger.WithFields(map[string]interface{}{
		"to":          resident.Email,
		"delivery_id": deliveryID,
	}).Info("Bill notice sent")

	return &SendResult{
		Success:    true,
		DeliveryID: deliveryID,
	}
}

// CheckConfig inspects the relay settings without contacting the relay.
func (m *smtpMailer) CheckConfig() *ConfigCheck {
	var issues []string

	for _, name := range m.missingSettings() {
		issues = append(issues, name+" is missing")
	}

	if m.smtp.Host == "smtp.gmail.com" && !strings.Contains(m.smtp.Username, "@gmail.com") {
		issues = append(issues, "Gmail SMTP requires a full Gmail address as the username")
	}
	if m.smtp.Host == "smtp.gmail.com" && m.smtp.Port != 465 && m.smtp.Port != 587 {
		issues = append(issues, "Gmail SMTP requires port 465 (SSL) or 587 (TLS)")
	}
	if m.smtp.From != "" && !IsValidEmail(m.smtp.From) {
		issues = append(issues, "EMAIL_FROM is not a valid email address")
	}

	return &ConfigCheck{
		HasIssues: len(issues) > 0,
		Issues:    issues,
		Config: ConfigSummary{
			Host:   m.smtp.Host,
			Port:   m.smtp.Port,
			Secure: m.smtp.Port == 465,
			User:   m.smtp.Username,
			From:   m.smtp.From,
		},
	}
}

func (m *smtpMailer) missingSettings() []string {
	var missing []string
	if m.smtp.Host == "" {
		missing = append(missing, "EMAIL_HOST")
	}
	if m.smtp.Port == 0 {
		missing = append(missing, "EMAIL_PORT")
	}
	if m.smtp.Username == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if m.smtp.Password == "" {
		missing = append(missing, "EMAIL_PASSWORD")
	}
	if m.smtp.From == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	return missing
}

// classifyError maps a relay error to a reason code and caller-facing
// message. SMTP protocol errors arrive as *textproto.Error; dial failures
// as net errors.
func classifyError(err error) (reason, message string) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout, "Connection timed out. The mail relay is not responding."
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ReasonConnection, "Connection error. Please check the mail relay hostname."
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ReasonConnection, "Connection error. Please check the mail relay host and port settings."
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return ReasonAuth, "Authentication failed. Please check the relay username and password."
		case 550, 551, 553:
			return ReasonRecipientRejected, "Recipient address rejected. The email address may not exist or be invalid."
		case 552, 554:
			return ReasonContentRejected, "Transaction failed. This could be due to spam filtering or content restrictions."
		}
		return ReasonUnknown, fmt.Sprintf("Relay rejected the message (%d): %s", protoErr.Code, protoErr.Msg)
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "auth"):
		return ReasonAuth, "Authentication failed. Please check the relay username and password."
	case strings.Contains(lower, "connection refused"), strings.Contains(lower, "no such host"):
		return ReasonConnection, "Connection error. Please check the mail relay host and port settings."
	case strings.Contains(lower, "timeout"):
		return ReasonTimeout, "Connection timed out. The mail relay is not responding."
	}

	return ReasonUnknown, err.Error()
}
