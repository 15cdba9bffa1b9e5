package practicearea

import (
	"errors"

	"github.com/lexofis/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles practice area queries. The entity is read-only: rows come
// from deployment migrations and the service only lists and resolves them.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// List returns all practice areas in display order. Never fails.
func (s *Service) List() []models.PracticeAreaModel {
	if s.db == nil {
		return []models.PracticeAreaModel{}
	}
	var areas []models.PracticeAreaModel
	if err := s.db.Order("order_index ASC").Find(&areas).Error; err != nil {
		s.log.Error("list failed", zap.String("entity", "practice_area"), zap.Error(err))
		return []models.PracticeAreaModel{}
	}
	return areas
}

// GetBySlug fetches a single practice area by slug, nil when absent.
func (s *Service) GetBySlug(slug string) *models.PracticeAreaModel {
	if s.db == nil {
		return nil
	}
	var area models.PracticeAreaModel
	if err := s.db.Where("slug = ?", slug).First(&area).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("get failed", zap.String("entity", "practice_area"), zap.String("slug", slug), zap.Error(err))
		}
		return nil
	}
	return &area
}
