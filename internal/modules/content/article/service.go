package article

import (
	"errors"
	"fmt"
	"time"

	"github.com/lexofis/core/internal/database"
	"github.com/lexofis/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateArticleDTO is the payload accepted by the article editor.
type CreateArticleDTO struct {
	Title     string `json:"title"     validate:"required"`
	Slug      string `json:"slug"      validate:"required"`
	Excerpt   string `json:"excerpt"   validate:"required"`
	Content   string `json:"content"   validate:"required"`
	Category  string `json:"category"  validate:"required"`
	Author    string `json:"author"    validate:"required"`
	ReadTime  int    `json:"read_time" validate:"required,gt=0"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

// Service handles article queries. db may be nil (unconfigured store):
// reads then degrade to empty results and writes fail with ErrUnconfigured.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// List returns all articles, most recently published first.
// It never fails: any store fault is logged and an empty slice returned.
func (s *Service) List() []models.ArticleModel {
	if s.db == nil {
		return []models.ArticleModel{}
	}
	var articles []models.ArticleModel
	if err := s.db.Order("published_at DESC").Find(&articles).Error; err != nil {
		s.log.Error("list failed", zap.String("entity", "article"), zap.Error(err))
		return []models.ArticleModel{}
	}
	return articles
}

// ListAdmin returns all articles for the admin listing, newest first.
func (s *Service) ListAdmin() []models.ArticleModel {
	if s.db == nil {
		return []models.ArticleModel{}
	}
	var articles []models.ArticleModel
	if err := s.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		s.log.Error("admin list failed", zap.String("entity", "article"), zap.Error(err))
		return []models.ArticleModel{}
	}
	return articles
}

// GetBySlug fetches a single article by slug. Absent and faulted lookups
// both yield nil; faults are logged.
func (s *Service) GetBySlug(slug string) *models.ArticleModel {
	if s.db == nil {
		return nil
	}
	var a models.ArticleModel
	if err := s.db.Where("slug = ?", slug).First(&a).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("get failed", zap.String("entity", "article"), zap.String("slug", slug), zap.Error(err))
		}
		return nil
	}
	return &a
}

// Create inserts a new article with its publication timestamp set to now.
// Unlike reads, faults propagate: a dropped submission must be visible.
func (s *Service) Create(dto *CreateArticleDTO) (*models.ArticleModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("create article: %w", database.ErrUnconfigured)
	}

	var count int64
	s.db.Model(&models.ArticleModel{}).Where("slug = ?", dto.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("slug already exists")
	}

	now := time.Now()
	a := models.ArticleModel{
		Title:       dto.Title,
		Slug:        dto.Slug,
		Excerpt:     dto.Excerpt,
		Content:     dto.Content,
		Author:      dto.Author,
		ImageURL:    dto.ImageURL,
		Category:    dto.Category,
		ReadTime:    dto.ReadTime,
		Published:   dto.Published,
		PublishedAt: &now,
	}
	if err := s.db.Create(&a).Error; err != nil {
		s.log.Error("create failed", zap.String("entity", "article"), zap.Error(err))
		return nil, err
	}
	return &a, nil
}
