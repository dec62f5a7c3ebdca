package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	HospitalName string `json:"hospital_name" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,pincode"`
	Date         string `json:"date" validate:"required"` // Format: YYYY-MM-DD
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	HospitalName    string    `json:"hospital_name"`
	Pincode         string    `json:"pincode"`
	ScheduledAt     string    `json:"scheduled_at"`
	AppointmentCode string    `json:"appointment_code"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
