package handler

import (
	"errors"
	"net/http"

	"github.com/swapnilsborase/blooddonor-service/internal/converter"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
	"github.com/swapnilsborase/blooddonor-service/internal/usecase"
	"github.com/swapnilsborase/blooddonor-service/pkg/response"
)

type HospitalHandler struct {
	searchUsecase usecase.HospitalSearchUsecase
}

func NewHospitalHandler(searchUsecase usecase.HospitalSearchUsecase) *HospitalHandler {
	return &HospitalHandler{
		searchUsecase: searchUsecase,
	}
}

// Search finds hospitals near a 6-digit PIN code
// @Summary Search hospitals by PIN code
// @Description Look up hospitals registered under a postal code along with a map center coordinate
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param pin query string true "6-digit PIN code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /hospitals/search [get]
func (h *HospitalHandler) Search(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin")

	result, err := h.searchUsecase.Search(r.Context(), pin)
	if err != nil {
		switch {
		case fault.IsValidation(err):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrSearchSuperseded):
			// A newer search replaced this one; the stale result is dropped.
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case fault.IsLookup(err):
			response.BadGateway(w, "Hospital lookup failed")
		default:
			response.InternalServerError(w, "Hospital lookup failed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", converter.SearchResultToResponse(result))
}
