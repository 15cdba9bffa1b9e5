package models

import "time"

// ArticleModel is a blog article written by the firm.
type ArticleModel struct {
	Base
	Title       string     `json:"title"        gorm:"not null"`
	Slug        string     `json:"slug"         gorm:"uniqueIndex;not null"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"      gorm:"type:text"`
	Author      string     `json:"author"`
	ImageURL    string     `json:"image_url"`
	Category    string     `json:"category"     gorm:"index"`
	ReadTime    int        `json:"read_time"    gorm:"default:0"`
	Published   bool       `json:"published"    gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at"`
}

func (ArticleModel) TableName() string { return "articles" }
