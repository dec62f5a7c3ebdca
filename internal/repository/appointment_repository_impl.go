package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	domainRepo "github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.DonationAppointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationAppointment, error) {
	var appointment entity.DonationAppointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDonor(db *gorm.DB, donorEmail string) ([]entity.DonationAppointment, error) {
	var appointments []entity.DonationAppointment
	err := db.Where("donor_email = ?", donorEmail).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) FindByDonorHospitalDate(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error) {
	var appointment entity.DonationAppointment
	err := db.Where("donor_email = ? AND hospital_name = ? AND scheduled_at = ? AND status <> ?",
		donorEmail, hospitalName, date, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.DonationAppointment) error {
	return db.Save(appointment).Error
}
