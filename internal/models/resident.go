package models

import (
	"time"
)

// Resident represents the residents table. Identifiers are generated uuid
// strings, not numeric auto-increment. The flat number is human-assigned
// and unique across all residents; the unique index makes the store, not
// the application, the final authority on that.
type Resident struct {
	ID         string    `json:"id" gorm:"primaryKey;column:id"`
	Name       string    `json:"name" gorm:"column:name;not null"`
	FlatNumber string    `json:"flatNumber" gorm:"column:flat_number;uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"column:email;not null"`
	Phone      string    `json:"phone" gorm:"column:phone;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for Resident
func (Resident) TableName() string {
	return "residents"
}

// ResidentInput is the create/update payload for a resident.
type ResidentInput struct {
	Name       string `json:"name"`
	FlatNumber string `json:"flatNumber"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Validate returns a field-level error map for missing required fields, or
// nil when the input is complete.
func (in *ResidentInput) Validate() map[string]string {
	fields := make(map[string]string)
	if in.Name == "" {
		fields["name"] = "Name is required"
	}
	if in.FlatNumber == "" {
		fields["flatNumber"] = "Flat number is required"
	}
	if in.Email == "" {
		fields["email"] = "Email is required"
	}
	if in.Phone == "" {
		fields["phone"] = "Phone is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
