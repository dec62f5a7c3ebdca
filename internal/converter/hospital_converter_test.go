package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/entity"
)

func TestHospitalToResponse_MissingPhoneGetsPlaceholder(t *testing.T) {
	resp := HospitalToResponse(&entity.HospitalRecord{
		Name:    "Rural Clinic",
		Address: "2 Farm Ln",
		City:    "Pune",
		State:   "MH",
	})
	require.NotNil(t, resp)
	assert.Equal(t, "N/A", resp.Phone)
}

func TestHospitalToResponse_PresentPhoneIsKept(t *testing.T) {
	resp := HospitalToResponse(&entity.HospitalRecord{
		Name:  "City Hospital",
		Phone: "020-1234",
	})
	require.NotNil(t, resp)
	assert.Equal(t, "020-1234", resp.Phone)
}

func TestSearchResultToResponse(t *testing.T) {
	result := &entity.SearchResult{
		Hospitals: []entity.HospitalRecord{
			{Name: "City Hospital", Phone: "020-1234"},
			{Name: "Rural Clinic"},
		},
		MapCenter: &entity.Coordinate{Latitude: 18.52, Longitude: 73.86},
	}

	resp := SearchResultToResponse(result)
	require.NotNil(t, resp)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Hospitals, 2)
	assert.Equal(t, "N/A", resp.Hospitals[1].Phone)
	require.NotNil(t, resp.MapCenter)
	assert.Equal(t, 18.52, resp.MapCenter.Latitude)
}

func TestSearchResultToResponse_NoMapCenter(t *testing.T) {
	resp := SearchResultToResponse(&entity.SearchResult{
		Hospitals: []entity.HospitalRecord{},
	})
	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Total)
	assert.Nil(t, resp.MapCenter)
}
