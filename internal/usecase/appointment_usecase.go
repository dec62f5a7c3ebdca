package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/swapnilsborase/blooddonor-service/internal/converter"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAlreadyBooked        = errors.New("an appointment at this hospital on this date already exists")
	ErrAppointmentPast      = errors.New("cannot book an appointment in the past")
	ErrAppointmentCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to you")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, donorEmail string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, donorEmail string) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, donorEmail string, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Book reserves a donation slot. Past dates and duplicate bookings for the
// same hospital and date are rejected before any insert.
func (u *appointmentUsecase) Book(ctx context.Context, donorEmail string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrAppointmentPast
	}

	db := u.db.WithContext(ctx)

	existing, err := u.appointmentRepo.FindByDonorHospitalDate(db, donorEmail, req.HospitalName, date)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	code, err := generateAppointmentCode()
	if err != nil {
		u.log.Warnf("Failed to generate appointment code: %+v", err)
		return nil, err
	}

	appointment := &entity.DonationAppointment{
		DonorEmail:      donorEmail,
		HospitalName:    req.HospitalName,
		Pincode:         req.Pincode,
		ScheduledAt:     date,
		AppointmentCode: code,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isDuplicateKeyError(err, "appointment_code") {
			return nil, ErrAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, donorEmail string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDonor(u.db.WithContext(ctx), donorEmail)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", donorEmail, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, donorEmail string, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.DonorEmail != donorEmail {
		return ErrAppointmentNotOwned
	}
	if appointment.IsCancelled() {
		return ErrAppointmentCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}

	return nil
}

func generateAppointmentCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("DON-%s", strings.ToUpper(hex.EncodeToString(buf))), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
