package handler

import (
	"encoding/json"
	"net/http"

	"github.com/swapnilsborase/blooddonor-service/internal/delivery/dto"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
	"github.com/swapnilsborase/blooddonor-service/internal/usecase"
	"github.com/swapnilsborase/blooddonor-service/pkg/response"
	"github.com/swapnilsborase/blooddonor-service/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// SubmitBloodDetails completes registration with the donor's blood profile
// @Summary Submit blood details
// @Description Attach blood group, date of birth, location and weight to the account
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.BloodDetailsRequest true "Blood Details Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/blood-details [post]
func (h *ProfileHandler) SubmitBloodDetails(w http.ResponseWriter, r *http.Request) {
	var req dto.BloodDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.SubmitBloodDetails(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrFutureDateOfBirth,
			usecase.ErrInvalidWeight, usecase.ErrUnderage:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrAccountNotFound:
			response.NotFound(w, "Create an account before submitting blood details")
		default:
			response.InternalServerError(w, "Failed to save blood details")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood details saved successfully", profile)
}

// GetProfile returns the full donor profile
// @Summary Get profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetProfile(r.Context())
	if err != nil {
		switch {
		case err == usecase.ErrAccountNotFound:
			response.NotFound(w, "Account not found")
		case fault.IsStorage(err):
			response.InternalServerError(w, "Failed to read profile")
		default:
			response.InternalServerError(w, "Failed to read profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile edits credential fields one by one
// @Summary Update profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateAccountRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateAccount(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAccountNotFound:
			response.NotFound(w, "Account not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// SetAvatar stores a captured profile image reference
// @Summary Set profile image
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetAvatarRequest true "Avatar Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile/avatar [put]
func (h *ProfileHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var req dto.SetAvatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.profileUsecase.SetProfileImage(r.Context(), req.ImageRef); err != nil {
		if fault.IsPermission(err) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to save profile image")
		return
	}

	response.Success(w, http.StatusOK, "Profile image saved", nil)
}

// ClearAvatar removes the stored profile image reference
// @Summary Clear profile image
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /profile/avatar [delete]
func (h *ProfileHandler) ClearAvatar(w http.ResponseWriter, r *http.Request) {
	if err := h.profileUsecase.ClearProfileImage(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to clear profile image")
		return
	}

	response.Success(w, http.StatusOK, "Profile image cleared", nil)
}
