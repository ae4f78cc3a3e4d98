package mailer

import (
	"net/mail"
	"strings"

	"society-billing-svc/internal/models"
)

// Reason codes for delivery failures. Every failure path inside the mailer
// is converted to one of these; nothing escapes the SendBill boundary.
const (
	ReasonNotConfigured     = "not_configured"
	ReasonConnection        = "connection"
	ReasonAuth              = "auth"
	ReasonTimeout           = "timeout"
	ReasonRecipientRejected = "recipient_rejected"
	ReasonContentRejected   = "content_rejected"
	ReasonUnknown           = "unknown"
)

// SendResult is the structured outcome of a delivery attempt.
type SendResult struct {
	Success    bool   `json:"success"`
	DeliveryID string `json:"deliveryId,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ConfigSummary echoes the relay settings with the password redacted.
type ConfigSummary struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
	From   string `json:"from"`
}

// ConfigCheck reports relay configuration problems without contacting the
// relay.
type ConfigCheck struct {
	HasIssues bool          `json:"hasIssues"`
	Issues    []string      `json:"issues"`
	Config    ConfigSummary `json:"config"`
}

// Mailer formats and delivers bill notices.
type Mailer interface {
	// SendBill attempts delivery of a bill notice to the resident's email
	// address. It never panics or returns an error; all failures come back
	// as a SendResult with a reason code.
	SendBill(resident *models.Resident, bill *models.Bill) *SendResult

	// CheckConfig inspects the relay settings for presence and basic
	// plausibility. It performs no network I/O.
	CheckConfig() *ConfigCheck
}

// IsValidEmail reports whether an address is syntactically plausible: it
// must parse as an address and carry a dot in the domain part.
func IsValidEmail(address string) bool {
	addr, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(addr.Address[at+1:], ".")
}
