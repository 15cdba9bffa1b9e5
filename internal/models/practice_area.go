package models

// PracticeAreaModel is a category of legal service offered by the firm.
// Read-only: rows are seeded by deployment migrations, not by the service.
type PracticeAreaModel struct {
	Base
	Name       string `json:"name"        gorm:"uniqueIndex;not null"`
	Slug       string `json:"slug"        gorm:"uniqueIndex;not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}

func (PracticeAreaModel) TableName() string { return "practice_areas" }
