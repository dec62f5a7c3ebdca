package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.DonationAppointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationAppointment, error)
	FindByDonor(db *gorm.DB, donorEmail string) ([]entity.DonationAppointment, error)
	FindByDonorHospitalDate(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error)
	Update(db *gorm.DB, appointment *entity.DonationAppointment) error
}
