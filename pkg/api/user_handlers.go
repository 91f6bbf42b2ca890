package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platinummonkey/habit-api/pkg/httputil"
)

// UserHandlers handles the user resource. Responses are fixed; nothing is stored.
type UserHandlers struct {
	users []User
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers() *UserHandlers {
	return &UserHandlers{
		users: []User{{Name: "user1"}, {Name: "user2"}},
	}
}

// RegisterRoutes registers user routes
func (h *UserHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/user", h.listUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/user/", h.listUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/user/{id}", h.getUser).Methods(http.MethodGet)
	router.HandleFunc("/api/user/{id}", h.updateUser).Methods(http.MethodPut)
	router.HandleFunc("/api/user/{id}", h.deleteUser).Methods(http.MethodDelete)
}

// listUsers handles GET /api/user/
func (h *UserHandlers) listUsers(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, UserListResponse{Users: h.users})
}

// getUser handles GET /api/user/{id}
func (h *UserHandlers) getUser(w http.ResponseWriter, r *http.Request) {
	id := httputil.PathParam(r, "id")
	httputil.WriteSuccess(w, UserResponse{User: fmt.Sprintf("user with id: %s", id)})
}

// updateUser handles PUT /api/user/{id}
func (h *UserHandlers) updateUser(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, MessageResponse{Message: "updated user"})
}

// deleteUser handles DELETE /api/user/{id}
func (h *UserHandlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := httputil.PathParam(r, "id")
	httputil.WriteSuccess(w, MessageResponse{Message: fmt.Sprintf("deleted user with id: %s", id)})
}
