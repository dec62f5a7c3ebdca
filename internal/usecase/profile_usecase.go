package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"github.com/swapnilsborase/blooddonor-service/pkg/eligibility"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrFutureDateOfBirth = errors.New("date of birth must not be in the future")
	ErrInvalidWeight     = errors.New("weight must be a number between 25 and 250 kg")
	ErrUnderage          = errors.New("donor must be at least 18 years old")
	ErrProfileNotFound   = errors.New("blood profile not found")
)

// RegistrationSink receives the completed registration payload. Failures are
// logged and never block the local flow.
type RegistrationSink interface {
	Push(ctx context.Context, record *entity.RegistrationRecord) error
}

type ProfileUsecase interface {
	SubmitBloodDetails(ctx context.Context, req *dto.BloodDetailsRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpdateAccount(ctx context.Context, req *dto.UpdateAccountRequest) (*dto.ProfileResponse, error)
	SetProfileImage(ctx context.Context, ref string) error
	ClearProfileImage(ctx context.Context) error
}

type profileUsecase struct {
	log         *logrus.Logger
	accountRepo repository.AccountRepository
	sink        RegistrationSink
	now         func() time.Time
}

func NewProfileUsecase(
	log *logrus.Logger,
	accountRepo repository.AccountRepository,
	sink RegistrationSink,
	now func() time.Time,
) ProfileUsecase {
	if now == nil {
		now = time.Now
	}
	return &profileUsecase{
		log:         log,
		accountRepo: accountRepo,
		sink:        sink,
		now:         now,
	}
}

// SubmitBloodDetails completes registration. Every validation, including the
// age gate, runs before any persistence or network write; an ineligible or
// malformed submission leaves the store untouched.
func (u *profileUsecase) SubmitBloodDetails(ctx context.Context, req *dto.BloodDetailsRequest) (*dto.ProfileResponse, error) {
	dob, err := time.Parse(entity.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	now := u.now()
	if dob.After(now) {
		return nil, ErrFutureDateOfBirth
	}

	weight, err := decimal.NewFromString(req.Weight)
	if err != nil {
		return nil, ErrInvalidWeight
	}
	if weight.LessThan(entity.MinDonorWeightKg) || weight.GreaterThan(entity.MaxDonorWeightKg) {
		return nil, ErrInvalidWeight
	}

	age := eligibility.ComputeAge(dob, now)
	if !eligibility.IsEligible(age) {
		return nil, ErrUnderage
	}

	account, ok, err := u.accountRepo.GetAccount(ctx)
	if err != nil {
		u.log.Warnf("Failed to read stored account: %+v", err)
		return nil, err
	}
	// A partially written account (crash mid-save) cannot anchor a blood
	// profile; treat it the same as no account.
	if !ok || !account.IsComplete() {
		return nil, ErrAccountNotFound
	}

	profile := &entity.BloodProfile{
		BloodGroup:  entity.BloodGroup(req.BloodGroup),
		DateOfBirth: dob,
		Location:    req.Location,
		WeightKg:    weight,
	}

	if err := u.accountRepo.SaveBloodProfile(ctx, profile, age); err != nil {
		u.log.Warnf("Failed to save blood profile: %+v", err)
		return nil, err
	}

	// Fire-and-forget: the remote sink never blocks local persistence.
	record := &entity.RegistrationRecord{
		FullName:   account.FullName,
		Email:      account.Email,
		Password:   account.Password,
		BloodGroup: string(profile.BloodGroup),
		Location:   profile.Location,
		Weight:     profile.WeightKg.String(),
		DOB:        profile.DOBString(),
		Age:        age,
	}
	if err := u.sink.Push(ctx, record); err != nil {
		u.log.Warnf("Failed to push registration to profile sink: %+v", err)
	}

	return u.buildProfileResponse(ctx, account, profile)
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	account, ok, err := u.accountRepo.GetAccount(ctx)
	if err != nil {
		u.log.Warnf("Failed to read stored account: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrAccountNotFound
	}

	profile, _, err := u.accountRepo.GetBloodProfile(ctx)
	if err != nil {
		u.log.Warnf("Failed to read blood profile: %+v", err)
		return nil, err
	}

	return u.buildProfileResponse(ctx, account, profile)
}

// UpdateAccount overwrites credential fields one by one. Writes are
// independent per key; there is no atomicity across them.
func (u *profileUsecase) UpdateAccount(ctx context.Context, req *dto.UpdateAccountRequest) (*dto.ProfileResponse, error) {
	account, ok, err := u.accountRepo.GetAccount(ctx)
	if err != nil {
		u.log.Warnf("Failed to read stored account: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrAccountNotFound
	}

	if req.FullName != "" {
		account.FullName = req.FullName
	}
	if req.Email != "" {
		account.Email = req.Email
	}
	if req.Password != "" {
		account.Password = req.Password
	}

	if err := u.accountRepo.SaveAccount(ctx, account); err != nil {
		u.log.Warnf("Failed to save account: %+v", err)
		return nil, err
	}

	profile, _, err := u.accountRepo.GetBloodProfile(ctx)
	if err != nil {
		u.log.Warnf("Failed to read blood profile: %+v", err)
		return nil, err
	}

	return u.buildProfileResponse(ctx, account, profile)
}

func (u *profileUsecase) SetProfileImage(ctx context.Context, ref string) error {
	if err := u.accountRepo.SetProfileImage(ctx, ref); err != nil {
		u.log.Warnf("Failed to save profile image: %+v", err)
		return err
	}
	return nil
}

func (u *profileUsecase) ClearProfileImage(ctx context.Context) error {
	if err := u.accountRepo.ClearProfileImage(ctx); err != nil {
		u.log.Warnf("Failed to clear profile image: %+v", err)
		return err
	}
	return nil
}

func (u *profileUsecase) buildProfileResponse(ctx context.Context, account *entity.Account, profile *entity.BloodProfile) (*dto.ProfileResponse, error) {
	resp := &dto.ProfileResponse{
		FullName: account.FullName,
		Email:    account.Email,
	}

	if profile != nil {
		resp.BloodGroup = string(profile.BloodGroup)
		resp.Location = profile.Location
		if !profile.WeightKg.IsZero() {
			resp.Weight = profile.WeightKg.String()
		}
		if !profile.DateOfBirth.IsZero() {
			resp.DateOfBirth = profile.DOBString()
			age := eligibility.ComputeAge(profile.DateOfBirth, u.now())
			resp.Age = age
			resp.Eligible = eligibility.IsEligible(age)
		}
	}

	image, ok, err := u.accountRepo.ProfileImage(ctx)
	if err != nil {
		u.log.Warnf("Failed to read profile image: %+v", err)
		return nil, err
	}
	if ok {
		resp.ProfileImage = image
	}

	return resp, nil
}
