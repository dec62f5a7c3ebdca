package converter

import (
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
)

// HospitalToResponse converts a HospitalRecord entity to HospitalResponse
// DTO. The "N/A" phone default is a display concern and is applied only
// here, never inside the lookup client's result.
func HospitalToResponse(hospital *entity.HospitalRecord) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	phone := hospital.Phone
	if phone == "" {
		phone = "N/A"
	}

	return &dto.HospitalResponse{
		Name:    hospital.Name,
		Address: hospital.Address,
		City:    hospital.City,
		State:   hospital.State,
		Phone:   phone,
	}
}

// SearchResultToResponse converts a SearchResult to its response DTO.
func SearchResultToResponse(result *entity.SearchResult) *dto.SearchResponse {
	if result == nil {
		return nil
	}

	hospitals := make([]dto.HospitalResponse, len(result.Hospitals))
	for i, h := range result.Hospitals {
		hospitals[i] = *HospitalToResponse(&h)
	}

	resp := &dto.SearchResponse{
		Hospitals: hospitals,
		Total:     len(hospitals),
	}
	if result.MapCenter != nil {
		resp.MapCenter = &dto.CoordinateResponse{
			Latitude:  result.MapCenter.Latitude,
			Longitude: result.MapCenter.Longitude,
		}
	}
	return resp
}
