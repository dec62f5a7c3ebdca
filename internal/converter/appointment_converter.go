package converter

import (
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
)

// AppointmentToResponse converts a DonationAppointment entity to its
// response DTO
func AppointmentToResponse(appointment *entity.DonationAppointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		HospitalName:    appointment.HospitalName,
		Pincode:         appointment.Pincode,
		ScheduledAt:     appointment.ScheduledAt.Format(entity.DateLayout),
		AppointmentCode: appointment.AppointmentCode,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of DonationAppointment entities
// to response DTOs
func AppointmentsToResponses(appointments []entity.DonationAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
