package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platinummonkey/habit-api/pkg/httputil"
)

// HabitHandlers handles the habit resource
type HabitHandlers struct {
	habits []Habit
}

// NewHabitHandlers creates a new habit handlers instance
func NewHabitHandlers() *HabitHandlers {
	return &HabitHandlers{
		habits: []Habit{{Name: "habit1"}, {Name: "habit2"}},
	}
}

// RegisterRoutes registers habit routes
func (h *HabitHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/habits", h.listHabits).Methods(http.MethodGet)
	router.HandleFunc("/api/habits/", h.listHabits).Methods(http.MethodGet)
	router.HandleFunc("/api/habits", h.createHabit).Methods(http.MethodPost)
	router.HandleFunc("/api/habits/", h.createHabit).Methods(http.MethodPost)
	router.HandleFunc("/api/habits/{id}", h.getHabit).Methods(http.MethodGet)
	router.HandleFunc("/api/habits/{id}", h.deleteHabit).Methods(http.MethodDelete)
}

func (h *HabitHandlers) listHabits(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, HabitListResponse{Habits: h.habits})
}

func (h *HabitHandlers) createHabit(w http.ResponseWriter, r *http.Request) {
	httputil.WriteCreated(w, MessageResponse{Message: "created habit"})
}

func (h *HabitHandlers) getHabit(w http.ResponseWriter, r *http.Request) {
	id := httputil.PathParam(r, "id")
	httputil.WriteSuccess(w, HabitResponse{Habit: fmt.Sprintf("habit with id: %s", id)})
}

func (h *HabitHandlers) deleteHabit(w http.ResponseWriter, r *http.Request) {
	id := httputil.PathParam(r, "id")
	httputil.WriteSuccess(w, MessageResponse{Message: fmt.Sprintf("deleted habit with id: %s", id)})
}
