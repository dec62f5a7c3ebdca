package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
	"github.com/swapnilsborase/blooddonor-service/pkg/validator"
)

// ErrSearchSuperseded reports that a newer search was issued while this one
// was in flight; its result is discarded rather than applied out of order.
var ErrSearchSuperseded = errors.New("search superseded by a newer request")

// DirectoryClient queries the hospital directory by postal code.
type DirectoryClient interface {
	ByPincode(ctx context.Context, pincode string) ([]entity.HospitalRecord, error)
}

// GeocodeClient resolves a free-text query to a coordinate, nil on no match.
type GeocodeClient interface {
	Lookup(ctx context.Context, query string) (*entity.Coordinate, error)
}

type HospitalSearchUsecase interface {
	Search(ctx context.Context, pincode string) (*entity.SearchResult, error)
}

type hospitalSearchUsecase struct {
	log       *logrus.Logger
	directory DirectoryClient
	geocoder  GeocodeClient

	// generation orders overlapping searches: only the most recently issued
	// search may apply its result, whatever order responses arrive in.
	generation atomic.Uint64
}

func NewHospitalSearchUsecase(
	log *logrus.Logger,
	directory DirectoryClient,
	geocoder GeocodeClient,
) HospitalSearchUsecase {
	return &hospitalSearchUsecase{
		log:       log,
		directory: directory,
		geocoder:  geocoder,
	}
}

// Search runs the two-call lookup chain for a six-digit PIN code: directory
// first, then geocoding. The directory call failing aborts the geocode call.
// Zero directory matches is a valid empty result, never a fault, and leaves
// the map center decision to the geocode leg independently. No result is
// cached; every call hits the network.
func (u *hospitalSearchUsecase) Search(ctx context.Context, pincode string) (*entity.SearchResult, error) {
	if !validator.IsPincode(pincode) {
		return nil, &fault.ValidationError{Field: "pincode", Reason: "must be a 6-digit PIN code"}
	}

	gen := u.generation.Add(1)

	hospitals, err := u.directory.ByPincode(ctx, pincode)
	if err != nil {
		u.log.Warnf("Hospital directory lookup failed for %s: %+v", pincode, err)
		return nil, err
	}

	center, err := u.geocoder.Lookup(ctx, pincode)
	if err != nil {
		u.log.Warnf("Geocode lookup failed for %s: %+v", pincode, err)
		return nil, err
	}

	if u.generation.Load() != gen {
		return nil, ErrSearchSuperseded
	}

	return &entity.SearchResult{
		Hospitals: hospitals,
		MapCenter: center,
	}, nil
}
