package dashboard

import (
	"github.com/lexofis/core/internal/models"
	"github.com/lexofis/core/internal/modules/intake/contact"
	"github.com/lexofis/core/internal/pkg/fallback"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Overview is the admin dashboard statistics block. Every count degrades to
// zero independently; the overview as a whole never fails.
type Overview struct {
	TotalArticles       int64 `json:"total_articles"`
	PublishedArticles   int64 `json:"published_articles"`
	PendingAppointments int64 `json:"pending_appointments"`
	UnreadContacts      int64 `json:"unread_contacts"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	contacts *contact.Service
}

func NewService(db *gorm.DB, log *zap.Logger, contacts *contact.Service) *Service {
	return &Service{db: db, log: log, contacts: contacts}
}

// Overview gathers the dashboard counts.
func (s *Service) Overview() Overview {
	if s.db == nil {
		return Overview{}
	}

	var o Overview
	if err := s.db.Model(&models.ArticleModel{}).Count(&o.TotalArticles).Error; err != nil {
		s.log.Error("count failed", zap.String("entity", "article"), zap.Error(err))
	}
	if err := s.db.Model(&models.AppointmentModel{}).
		Where("status = ?", models.AppointmentPending).
		Count(&o.PendingAppointments).Error; err != nil {
		s.log.Error("count failed", zap.String("entity", "appointment"), zap.Error(err))
	}
	o.PublishedArticles = s.publishedCount()
	o.UnreadContacts = s.contacts.UnreadCount()
	return o
}

// publishedCount tolerates the three ways deployed schemas mark an article
// as published: a boolean column, a status column, or a set date column.
func (s *Service) publishedCount() int64 {
	count := func(cond string, args ...interface{}) func() (int64, error) {
		return func() (int64, error) {
			var n int64
			err := s.db.Table("articles").Where(cond, args...).Count(&n).Error
			return n, err
		}
	}

	n, _, err := fallback.First(
		fallback.Probe[int64]{Name: "published_flag", Run: count("published = ?", true)},
		fallback.Probe[int64]{Name: "status_column", Run: count("status = ?", "published")},
		fallback.Probe[int64]{Name: "published_date", Run: count("published_at IS NOT NULL")},
	)
	if err != nil {
		s.log.Error("count failed", zap.String("entity", "article"), zap.Error(err))
		return 0
	}
	return n
}
