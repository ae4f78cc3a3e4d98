package mailer

import (
	"society-billing-svc/internal/models"
)

// SentRecord captures one SendBill invocation on the Recorder.
type SentRecord struct {
	Resident *models.Resident
	Bill     *models.Bill
}

// Recorder is a Mailer that records every send instead of contacting a
// relay. Used by tests and by deployments without a relay.
type Recorder struct {
	// Result is returned from SendBill. When nil, a success result with a
	// fixed delivery id is returned.
	Result *SendResult
	// Check is returned from CheckConfig. When nil, a clean check is
	// returned.
	Check *ConfigCheck

	Sent []SentRecord
}

var _ Mailer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SendBill(resident *models.Resident, bill *models.Bill) *SendResult {
	r.Sent = append(r.Sent, SentRecord{Resident: resident, Bill: bill})
	if r.Result != nil {
		out := *r.Result
		return &out
	}
	return &SendResult{Success: true, DeliveryID: "<recorded>"}
}

func (r *Recorder) CheckConfig() *ConfigCheck {
	if r.Check != nil {
		return r.Check
	}
	return &ConfigCheck{HasIssues: false, Issues: []string{}}
}
