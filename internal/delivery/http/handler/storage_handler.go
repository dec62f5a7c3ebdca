package handler

import (
	"net/http"

	"github.com/swapnilsborase/blooddonor-service/internal/domain/repository"
	"github.com/swapnilsborase/blooddonor-service/pkg/response"
)

// StorageHandler exposes the raw key-value contents for diagnostics.
type StorageHandler struct {
	store repository.KVStore
}

func NewStorageHandler(store repository.KVStore) *StorageHandler {
	return &StorageHandler{store: store}
}

// List dumps every stored key-value pair
// @Summary List stored entries
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/storage [get]
func (h *StorageHandler) List(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.store.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to read storage")
		return
	}

	response.Success(w, http.StatusOK, "Storage entries retrieved successfully", map[string]interface{}{
		"entries": pairs,
		"total":   len(pairs),
	})
}
