package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHandleRegisterUser(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: RegisterUserRequest{Username: "alice"},
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, "alice").
					Return(&domain.User{ID: "u1", Username: "alice", Money: domain.StartingBalance}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"money":5000`,
		},
		{
			name:           "Missing username",
			body:           map[string]string{},
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"kind":"InvalidParameters"`,
		},
		{
			name: "Username taken",
			body: RegisterUserRequest{Username: "alice"},
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, "alice").
					Return(nil, fmt.Errorf("%w: alice", domain.ErrUsernameTaken))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"kind":"UsernameTaken"`,
		},
		{
			name: "Username rejected by service",
			body: RegisterUserRequest{Username: "ab"},
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, "ab").
					Return(nil, fmt.Errorf("%w: username too short", domain.ErrInvalidParameters))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"kind":"InvalidParameters"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/users", jsonBody(t, tt.body))
			w := httptest.NewRecorder()
			HandleRegisterUser(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRegisterUser_MalformedJSON(t *testing.T) {
	svc := &MockUserService{}
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	HandleRegisterUser(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestHandleGetUser(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Found",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice", Money: 4200}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"money":4200`,
		},
		{
			name: "Unknown",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, "u1").Return(nil, fmt.Errorf("%w: u1", domain.ErrUserNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"kind":"UserNotFound"`,
		},
		{
			name: "Storage failure hides details",
			setupMock: func(m *MockUserService) {
				m.On("GetUser", mock.Anything, "u1").Return(nil, fmt.Errorf("dial tcp 10.0.0.5:5432: refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setupMock(svc)

			r := chi.NewRouter()
			r.Get("/users/{id}", HandleGetUser(svc))

			req := httptest.NewRequest(http.MethodGet, "/users/u1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
			svc.AssertExpectations(t)
		})
	}
}
