package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of a donation appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// DonationAppointment represents a booked donation slot at a hospital
type DonationAppointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DonorEmail      string            `gorm:"type:varchar(255);not null;index" json:"donor_email"`
	HospitalName    string            `gorm:"type:varchar(255);not null" json:"hospital_name"`
	Pincode         string            `gorm:"type:char(6);not null" json:"pincode"`
	ScheduledAt     time.Time         `gorm:"type:date;not null" json:"scheduled_at"`
	AppointmentCode string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"appointment_code"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DonationAppointment) TableName() string {
	return "donation_appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *DonationAppointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes the appointment status to cancelled
func (a *DonationAppointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
