package api

// User is a placeholder user record
type User struct {
	Name string `json:"name"`
}

// UserListResponse is returned by GET /api/user/
type UserListResponse struct {
	Users []User `json:"users"`
}

// UserResponse is returned by GET /api/user/{id}
type UserResponse struct {
	User string `json:"user"`
}

// Habit is a placeholder habit record
type Habit struct {
	Name string `json:"name"`
}

// HabitListResponse is returned by GET /api/habits/
type HabitListResponse struct {
	Habits []Habit `json:"habits"`
}

// HabitResponse is returned by GET /api/habits/{id}
type HabitResponse struct {
	Habit string `json:"habit"`
}

// MessageResponse is a plain acknowledgment
type MessageResponse struct {
	Message string `json:"message"`
}
