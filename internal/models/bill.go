package models

import (
	"time"
)

// Bill statuses. Status is the only field mutable after issuance.
const (
	BillStatusPaid    = "Paid"
	BillStatusPending = "Pending"
)

// Bill represents the bills table. Resident name, flat number and email are
// denormalized copies taken at issuance time so historical bills display
// correctly even if the resident record later changes or is deleted.
type Bill struct {
	ID           string    `json:"id" gorm:"primaryKey;column:id"`
	ResidentID   string    `json:"residentId" gorm:"column:resident_id;index;not null"`
	ResidentName string    `json:"residentName" gorm:"column:resident_name"`
	FlatNumber   string    `json:"flatNumber" gorm:"column:flat_number"`
	Email        string    `json:"email" gorm:"column:email"`
	Amount       string    `json:"amount" gorm:"column:amount;not null"`
	Status       string    `json:"status" gorm:"column:status;not null"`
	SentDate     string    `json:"sentDate" gorm:"column:sent_date"`
	Month        string    `json:"month" gorm:"column:month;not null"`
	Year         string    `json:"year" gorm:"column:year;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// BillInput is the issuance payload for a single bill. ResidentName,
// FlatNumber and Email are optional; when the resident exists they are
// overwritten from the store.
type BillInput struct {
	ResidentID   string `json:"residentId"`
	ResidentName string `json:"residentName"`
	FlatNumber   string `json:"flatNumber"`
	Email        string `json:"email"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
	Month        string `json:"month"`
	Year         string `json:"year"`
}

// HasRequiredFields reports whether the fields the bulk workflow requires
// (resident identifier, month, year, amount) are all present.
func (in *BillInput) HasRequiredFields() bool {
	return in.ResidentID != "" && in.Month != "" && in.Year != "" && in.Amount != ""
}

// BillFilter narrows a bill listing. All fields are optional and combined
// with logical AND.
type BillFilter struct {
	Month      string
	Year       string
	Status     string
	ResidentID string
}
