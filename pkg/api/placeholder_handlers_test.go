package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthAndHabitRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{http.MethodPost, "/api/auth/register", http.StatusCreated, `{"message":"user registered"}`},
		{http.MethodPost, "/api/auth/login", http.StatusOK, `{"message":"user logged in"}`},
		{http.MethodPost, "/api/auth/logout", http.StatusOK, `{"message":"user logged out"}`},
		{http.MethodGet, "/api/habits/", http.StatusOK, `{"habits":[{"name":"habit1"},{"name":"habit2"}]}`},
		{http.MethodGet, "/api/habits", http.StatusOK, `{"habits":[{"name":"habit1"},{"name":"habit2"}]}`},
		{http.MethodPost, "/api/habits", http.StatusCreated, `{"message":"created habit"}`},
		{http.MethodGet, "/api/habits/9", http.StatusOK, `{"habit":"habit with id: 9"}`},
		{http.MethodDelete, "/api/habits/9", http.StatusOK, `{"message":"deleted habit with id: 9"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, s, tt.method, tt.path, nil)
			assert.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRoutes_WrongMethod(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/1"},
		{http.MethodPatch, "/api/user"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/auth/register"},
		{http.MethodPut, "/api/habits/9"},
		{http.MethodDelete, "/api/habits"},
		{http.MethodPost, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, s, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
