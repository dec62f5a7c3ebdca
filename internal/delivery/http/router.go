package http

import (
	"net/http"

	"github.com/swapnilsborase/blooddonor-service/internal/delivery/http/handler"
	"github.com/swapnilsborase/blooddonor-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	hospitalHandler    *handler.HospitalHandler
	appointmentHandler *handler.AppointmentHandler
	storageHandler     *handler.StorageHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	hospitalHandler *handler.HospitalHandler,
	appointmentHandler *handler.AppointmentHandler,
	storageHandler *handler.StorageHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		hospitalHandler:    hospitalHandler,
		appointmentHandler: appointmentHandler,
		storageHandler:     storageHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/blood-details", r.profileHandler.SubmitBloodDetails).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Profile routes (protected)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	profile.HandleFunc("/avatar", r.profileHandler.SetAvatar).Methods(http.MethodPut)
	profile.HandleFunc("/avatar", r.profileHandler.ClearAvatar).Methods(http.MethodDelete)

	// Hospital lookup (protected)
	hospitals := api.PathPrefix("/hospitals").Subrouter()
	hospitals.Use(r.authMiddleware.Authenticate)
	hospitals.HandleFunc("/search", r.hospitalHandler.Search).Methods(http.MethodGet)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Diagnostics (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.HandleFunc("/storage", r.storageHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
