package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platinummonkey/habit-api/pkg/httputil"
)

// AuthHandlers handles authentication routes. No credentials are checked.
type AuthHandlers struct{}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers() *AuthHandlers {
	return &AuthHandlers{}
}

// RegisterRoutes registers auth routes
func (h *AuthHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", h.register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", h.login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", h.logout).Methods(http.MethodPost)
}

func (h *AuthHandlers) register(w http.ResponseWriter, r *http.Request) {
	httputil.WriteCreated(w, MessageResponse{Message: "user registered"})
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, MessageResponse{Message: "user logged in"})
}

func (h *AuthHandlers) logout(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, MessageResponse{Message: "user logged out"})
}
