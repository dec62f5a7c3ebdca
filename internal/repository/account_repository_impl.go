package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	domainRepo "github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
)

// Fixed keys of the account namespace. The composite userData blob duplicates
// several discrete keys; readers must tolerate both representations.
const (
	KeyFullName     = "userFullName"
	KeyEmail        = "userEmail"
	KeyPassword     = "userPassword"
	KeyProfileImage = "userProfileImage"
	KeyBloodGroup   = "userBloodGroup"
	KeyDOB          = "userDOB"
	KeyLocation     = "userLocation"
	KeyWeight       = "userWeight"
	KeyUserData     = "userData"
)

type accountRepository struct {
	store domainRepo.KVStore
}

func NewAccountRepository(store domainRepo.KVStore) domainRepo.AccountRepository {
	return &accountRepository{store: store}
}

// SaveAccount writes the three credential keys as independent writes. There
// is no atomicity across them; a crash mid-sequence leaves a partial record.
func (r *accountRepository) SaveAccount(ctx context.Context, account *entity.Account) error {
	if err := r.store.Set(ctx, KeyFullName, account.FullName); err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyEmail, account.Email); err != nil {
		return err
	}
	return r.store.Set(ctx, KeyPassword, account.Password)
}

func (r *accountRepository) GetAccount(ctx context.Context) (*entity.Account, bool, error) {
	name, _, err := r.store.Get(ctx, KeyFullName)
	if err != nil {
		return nil, false, err
	}
	email, emailOK, err := r.store.Get(ctx, KeyEmail)
	if err != nil {
		return nil, false, err
	}
	password, passOK, err := r.store.Get(ctx, KeyPassword)
	if err != nil {
		return nil, false, err
	}
	if !emailOK && !passOK {
		return nil, false, nil
	}
	return &entity.Account{FullName: name, Email: email, Password: password}, true, nil
}

// SaveBloodProfile writes the discrete keys (canonical) and then the
// composite userData blob (compatibility shim for readers of the original
// representation). Independent writes, same non-atomicity as SaveAccount.
func (r *accountRepository) SaveBloodProfile(ctx context.Context, profile *entity.BloodProfile, age int) error {
	if err := r.store.Set(ctx, KeyBloodGroup, string(profile.BloodGroup)); err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyDOB, profile.DOBString()); err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyLocation, profile.Location); err != nil {
		return err
	}
	if err := r.store.Set(ctx, KeyWeight, profile.WeightKg.String()); err != nil {
		return err
	}

	account, _, err := r.GetAccount(ctx)
	if err != nil {
		return err
	}
	if account == nil {
		account = &entity.Account{}
	}
	record := entity.RegistrationRecord{
		FullName:   account.FullName,
		Email:      account.Email,
		Password:   account.Password,
		BloodGroup: string(profile.BloodGroup),
		Location:   profile.Location,
		Weight:     profile.WeightKg.String(),
		DOB:        profile.DOBString(),
		Age:        age,
	}
	blob, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyUserData, string(blob))
}

func (r *accountRepository) GetBloodProfile(ctx context.Context) (*entity.BloodProfile, bool, error) {
	group, groupOK, err := r.store.Get(ctx, KeyBloodGroup)
	if err != nil {
		return nil, false, err
	}
	dob, _, err := r.store.Get(ctx, KeyDOB)
	if err != nil {
		return nil, false, err
	}
	location, _, err := r.store.Get(ctx, KeyLocation)
	if err != nil {
		return nil, false, err
	}
	weight, _, err := r.store.Get(ctx, KeyWeight)
	if err != nil {
		return nil, false, err
	}

	if !groupOK {
		// Discrete keys absent; fall back to the composite blob.
		return r.profileFromBlob(ctx)
	}

	profile := &entity.BloodProfile{
		BloodGroup: entity.BloodGroup(group),
		Location:   location,
	}
	if dob != "" {
		parsed, err := time.Parse(entity.DateLayout, dob)
		if err == nil {
			profile.DateOfBirth = parsed
		}
	}
	if weight != "" {
		w, err := decimal.NewFromString(weight)
		if err == nil {
			profile.WeightKg = w
		}
	}
	return profile, true, nil
}

func (r *accountRepository) profileFromBlob(ctx context.Context) (*entity.BloodProfile, bool, error) {
	blob, ok, err := r.store.Get(ctx, KeyUserData)
	if err != nil || !ok {
		return nil, false, err
	}
	var record entity.RegistrationRecord
	if err := json.Unmarshal([]byte(blob), &record); err != nil {
		return nil, false, nil
	}
	profile := &entity.BloodProfile{
		BloodGroup: entity.BloodGroup(record.BloodGroup),
		Location:   record.Location,
	}
	if record.DOB != "" {
		parsed, err := time.Parse(entity.DateLayout, record.DOB)
		if err == nil {
			profile.DateOfBirth = parsed
		}
	}
	if record.Weight != "" {
		w, err := decimal.NewFromString(record.Weight)
		if err == nil {
			profile.WeightKg = w
		}
	}
	return profile, true, nil
}

func (r *accountRepository) SetProfileImage(ctx context.Context, ref string) error {
	return r.store.Set(ctx, KeyProfileImage, ref)
}

func (r *accountRepository) ProfileImage(ctx context.Context) (string, bool, error) {
	return r.store.Get(ctx, KeyProfileImage)
}

func (r *accountRepository) ClearProfileImage(ctx context.Context) error {
	return r.store.Delete(ctx, KeyProfileImage)
}
