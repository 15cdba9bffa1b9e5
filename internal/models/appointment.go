package models

import "time"

// Appointment status values. Intake only ever produces "pending".
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentDeclined  = "declined"
)

// AppointmentModel is a consultation request from the public intake form.
type AppointmentModel struct {
	Base
	Name         string     `json:"name"          gorm:"not null"`
	Email        string     `json:"email"         gorm:"not null"`
	Phone        string     `json:"phone"`
	PracticeArea string     `json:"practice_area" gorm:"index"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"       gorm:"type:text"`
	PreferredAt  *time.Time `json:"preferred_at"`
	Status       string     `json:"status"        gorm:"default:pending;index"`
}

func (AppointmentModel) TableName() string { return "appointments" }
