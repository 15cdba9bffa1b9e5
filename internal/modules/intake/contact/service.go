package contact

import (
	"errors"
	"fmt"

	"github.com/lexofis/core/internal/database"
	"github.com/lexofis/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateContactDTO is the payload from the public contact form.
type CreateContactDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// UpdateStatusDTO carries an admin mark-read/archive decision.
type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=read archived"`
}

// Service handles contact messages against the variant table resolved at
// startup, so listing, counting and creation all agree on one schema.
type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	variant Variant
}

func NewService(db *gorm.DB, log *zap.Logger, v Variant) *Service {
	return &Service{db: db, log: log, variant: v}
}

// List returns contact messages newest first. Never fails.
func (s *Service) List() []models.ContactMessageModel {
	if s.db == nil {
		return []models.ContactMessageModel{}
	}
	var msgs []models.ContactMessageModel
	if err := s.db.Table(s.variant.Table).Order("created_at DESC").Find(&msgs).Error; err != nil {
		s.log.Error("list failed", zap.String("entity", "contact_message"),
			zap.String("table", s.variant.Table), zap.Error(err))
		return []models.ContactMessageModel{}
	}
	return msgs
}

// UnreadCount returns the number of unhandled messages, zero on any fault.
func (s *Service) UnreadCount() int64 {
	if s.db == nil {
		return 0
	}
	var n int64
	if err := s.db.Table(s.variant.Table).Where("status = ?", s.variant.NewStatus).Count(&n).Error; err != nil {
		s.log.Error("count failed", zap.String("entity", "contact_message"),
			zap.String("table", s.variant.Table), zap.Error(err))
		return 0
	}
	return n
}

// Create inserts a message with the variant's unread status. Faults
// propagate: a lost contact submission must surface to the caller.
func (s *Service) Create(dto *CreateContactDTO) (*models.ContactMessageModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("create contact message: %w", database.ErrUnconfigured)
	}

	msg := models.ContactMessageModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Subject: dto.Subject,
		Message: dto.Message,
		Status:  s.variant.NewStatus,
	}
	if err := s.db.Table(s.variant.Table).Create(&msg).Error; err != nil {
		s.log.Error("create failed", zap.String("entity", "contact_message"),
			zap.String("table", s.variant.Table), zap.Error(err))
		return nil, err
	}
	return &msg, nil
}

// UpdateStatus marks a message read or archived.
func (s *Service) UpdateStatus(id, status string) (*models.ContactMessageModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("update contact message: %w", database.ErrUnconfigured)
	}

	var msg models.ContactMessageModel
	if err := s.db.Table(s.variant.Table).Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.log.Error("update failed", zap.String("entity", "contact_message"), zap.Error(err))
		return nil, err
	}
	if err := s.db.Table(s.variant.Table).Where("id = ?", msg.ID).Update("status", status).Error; err != nil {
		s.log.Error("update failed", zap.String("entity", "contact_message"), zap.Error(err))
		return nil, err
	}
	msg.Status = status
	return &msg, nil
}
