package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockAppointmentRepo struct {
	CreateFunc                  func(db *gorm.DB, appointment *entity.DonationAppointment) error
	FindByIDFunc                func(db *gorm.DB, id uuid.UUID) (*entity.DonationAppointment, error)
	FindByDonorFunc             func(db *gorm.DB, donorEmail string) ([]entity.DonationAppointment, error)
	FindByDonorHospitalDateFunc func(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error)
	UpdateFunc                  func(db *gorm.DB, appointment *entity.DonationAppointment) error
}

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.DonationAppointment) error {
	return m.CreateFunc(db, appointment)
}
func (m *mockAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DonationAppointment, error) {
	return m.FindByIDFunc(db, id)
}
func (m *mockAppointmentRepo) FindByDonor(db *gorm.DB, donorEmail string) ([]entity.DonationAppointment, error) {
	return m.FindByDonorFunc(db, donorEmail)
}
func (m *mockAppointmentRepo) FindByDonorHospitalDate(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error) {
	return m.FindByDonorHospitalDateFunc(db, donorEmail, hospitalName, date)
}
func (m *mockAppointmentRepo) Update(db *gorm.DB, appointment *entity.DonationAppointment) error {
	return m.UpdateFunc(db, appointment)
}

// idleGormDB satisfies the usecase's db handle; the mocked repository never
// touches it.
func idleGormDB(t *testing.T) *gorm.DB {
	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}
	return db
}

func futureDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format(entity.DateLayout)
}

func TestBook_Success(t *testing.T) {
	var created *entity.DonationAppointment
	repo := &mockAppointmentRepo{
		FindByDonorHospitalDateFunc: func(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error) {
			return nil, nil
		},
		CreateFunc: func(db *gorm.DB, appointment *entity.DonationAppointment) error {
			created = appointment
			return nil
		},
	}
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

	resp, err := u.Book(context.Background(), "a@b.com", &dto.CreateAppointmentRequest{
		HospitalName: "City Hospital",
		Pincode:      "411001",
		Date:         futureDate(),
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if created == nil {
		t.Fatal("expected appointment to be created")
	}
	if created.Status != entity.AppointmentStatusPending {
		t.Errorf("status = %q; want pending", created.Status)
	}
	if !strings.HasPrefix(created.AppointmentCode, "DON-") {
		t.Errorf("appointment code = %q; want DON- prefix", created.AppointmentCode)
	}
	if resp.HospitalName != "City Hospital" {
		t.Errorf("response hospital = %q; want City Hospital", resp.HospitalName)
	}
}

func TestBook_PastDateRejected(t *testing.T) {
	repo := &mockAppointmentRepo{
		FindByDonorHospitalDateFunc: func(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error) {
			t.Fatal("no lookup should happen for a past date")
			return nil, nil
		},
	}
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

	_, err := u.Book(context.Background(), "a@b.com", &dto.CreateAppointmentRequest{
		HospitalName: "City Hospital",
		Pincode:      "411001",
		Date:         "2020-01-01",
	})
	if err != ErrAppointmentPast {
		t.Fatalf("Book error = %v; want ErrAppointmentPast", err)
	}
}

func TestBook_MalformedDateRejected(t *testing.T) {
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), &mockAppointmentRepo{})

	_, err := u.Book(context.Background(), "a@b.com", &dto.CreateAppointmentRequest{
		HospitalName: "City Hospital",
		Pincode:      "411001",
		Date:         "01/01/2030",
	})
	if err != ErrInvalidDateFormat {
		t.Fatalf("Book error = %v; want ErrInvalidDateFormat", err)
	}
}

func TestBook_DuplicateRejected(t *testing.T) {
	repo := &mockAppointmentRepo{
		FindByDonorHospitalDateFunc: func(db *gorm.DB, donorEmail, hospitalName string, date time.Time) (*entity.DonationAppointment, error) {
			return &entity.DonationAppointment{ID: uuid.New()}, nil
		},
		CreateFunc: func(db *gorm.DB, appointment *entity.DonationAppointment) error {
			t.Fatal("no insert should happen when a booking already exists")
			return nil
		},
	}
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

	_, err := u.Book(context.Background(), "a@b.com", &dto.CreateAppointmentRequest{
		HospitalName: "City Hospital",
		Pincode:      "411001",
		Date:         futureDate(),
	})
	if err != ErrAlreadyBooked {
		t.Fatalf("Book error = %v; want ErrAlreadyBooked", err)
	}
}

func TestCancel_Success(t *testing.T) {
	id := uuid.New()
	var updated *entity.DonationAppointment
	repo := &mockAppointmentRepo{
		FindByIDFunc: func(db *gorm.DB, got uuid.UUID) (*entity.DonationAppointment, error) {
			if got != id {
				t.Errorf("FindByID received %s; want %s", got, id)
			}
			return &entity.DonationAppointment{
				ID:         id,
				DonorEmail: "a@b.com",
				Status:     entity.AppointmentStatusPending,
			}, nil
		},
		UpdateFunc: func(db *gorm.DB, appointment *entity.DonationAppointment) error {
			updated = appointment
			return nil
		},
	}
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

	if err := u.Cancel(context.Background(), "a@b.com", id); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if updated == nil || updated.Status != entity.AppointmentStatusCancelled {
		t.Errorf("updated appointment = %+v; want cancelled status", updated)
	}
}

func TestCancel_Failures(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		stored  *entity.DonationAppointment
		caller  string
		wantErr error
	}{
		{"not found", nil, "a@b.com", ErrAppointmentNotFound},
		{"not owned", &entity.DonationAppointment{ID: id, DonorEmail: "x@y.com"}, "a@b.com", ErrAppointmentNotOwned},
		{"already cancelled", &entity.DonationAppointment{ID: id, DonorEmail: "a@b.com", Status: entity.AppointmentStatusCancelled}, "a@b.com", ErrAppointmentCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepo{
				FindByIDFunc: func(db *gorm.DB, got uuid.UUID) (*entity.DonationAppointment, error) {
					return tt.stored, nil
				},
				UpdateFunc: func(db *gorm.DB, appointment *entity.DonationAppointment) error {
					t.Fatal("no update should happen on a rejected cancel")
					return nil
				},
			}
			u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

			if err := u.Cancel(context.Background(), tt.caller, id); err != tt.wantErr {
				t.Fatalf("Cancel error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	repo := &mockAppointmentRepo{
		FindByDonorFunc: func(db *gorm.DB, donorEmail string) ([]entity.DonationAppointment, error) {
			return []entity.DonationAppointment{
				{ID: uuid.New(), DonorEmail: donorEmail, HospitalName: "City Hospital"},
				{ID: uuid.New(), DonorEmail: donorEmail, HospitalName: "Rural Clinic"},
			}, nil
		},
	}
	u := NewAppointmentUsecase(idleGormDB(t), quietLogger(), repo)

	resp, err := u.List(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if resp.Total != 2 || len(resp.Appointments) != 2 {
		t.Fatalf("list total = %d with %d entries; want 2/2", resp.Total, len(resp.Appointments))
	}
}
