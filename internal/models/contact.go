package models

// Contact message status values. Intake only ever produces the unread value,
// whose spelling depends on the deployed schema variant (see intake/contact).
const (
	ContactNew      = "new"
	ContactRead     = "read"
	ContactArchived = "archived"
)

// ContactMessageModel is a message from the public contact form.
// TableName is the canonical name; older deployments use "contacts" or
// "contact_submissions" for the same rows, which the variant resolver handles.
type ContactMessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
	Status  string `json:"status"  gorm:"default:new;index"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }
