package appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/lexofis/core/internal/database"
	"github.com/lexofis/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateAppointmentDTO is the payload from the public intake form.
type CreateAppointmentDTO struct {
	Name         string     `json:"name"          binding:"required"`
	Email        string     `json:"email"         binding:"required,email"`
	Phone        string     `json:"phone"`
	PracticeArea string     `json:"practice_area" binding:"required"`
	Subject      string     `json:"subject"`
	Message      string     `json:"message"`
	PreferredAt  *time.Time `json:"preferred_at"`
}

// UpdateStatusDTO carries an admin confirm/decline decision.
type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=confirmed declined"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// List returns appointments newest first. Never fails.
func (s *Service) List() []models.AppointmentModel {
	if s.db == nil {
		return []models.AppointmentModel{}
	}
	var appts []models.AppointmentModel
	if err := s.db.Order("created_at DESC").Find(&appts).Error; err != nil {
		s.log.Error("list failed", zap.String("entity", "appointment"), zap.Error(err))
		return []models.AppointmentModel{}
	}
	return appts
}

// ListByPreferredDate orders by the requested consultation slot, latest
// first, which is how the admin review page walks the queue.
func (s *Service) ListByPreferredDate() []models.AppointmentModel {
	if s.db == nil {
		return []models.AppointmentModel{}
	}
	var appts []models.AppointmentModel
	if err := s.db.Order("preferred_at DESC").Find(&appts).Error; err != nil {
		s.log.Error("list failed", zap.String("entity", "appointment"), zap.Error(err))
		return []models.AppointmentModel{}
	}
	return appts
}

// Create inserts a pending appointment request. Faults propagate: silently
// dropping a client's consultation request is not acceptable.
func (s *Service) Create(dto *CreateAppointmentDTO) (*models.AppointmentModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("create appointment: %w", database.ErrUnconfigured)
	}

	appt := models.AppointmentModel{
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PracticeArea: dto.PracticeArea,
		Subject:      dto.Subject,
		Message:      dto.Message,
		PreferredAt:  dto.PreferredAt,
		Status:       models.AppointmentPending,
	}
	if err := s.db.Create(&appt).Error; err != nil {
		s.log.Error("create failed", zap.String("entity", "appointment"), zap.Error(err))
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus records a confirm/decline decision. No notification is sent.
func (s *Service) UpdateStatus(id, status string) (*models.AppointmentModel, error) {
	if s.db == nil {
		return nil, fmt.Errorf("update appointment: %w", database.ErrUnconfigured)
	}

	var appt models.AppointmentModel
	if err := s.db.First(&appt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.log.Error("update failed", zap.String("entity", "appointment"), zap.Error(err))
		return nil, err
	}
	if err := s.db.Model(&appt).Update("status", status).Error; err != nil {
		s.log.Error("update failed", zap.String("entity", "appointment"), zap.Error(err))
		return nil, err
	}
	return &appt, nil
}
