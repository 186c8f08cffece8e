package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/services"
)

// authedRequest builds a request carrying a resolved user, the way the
// identity middleware hands it to handlers.
func authedRequest(t *testing.T, method, target, body string, user *models.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if user != nil {
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
	}
	return req
}

func TestCreateActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Username: "john", Email: "john@example.com"}

	tests := []struct {
		name         string
		user         *models.User
		body         string
		mockSetup    func(m *MockActivityAdder)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			user: user,
			body: `{"name":"Run","points":30,"date":"2025-01-15"}`,
			mockSetup: func(m *MockActivityAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), models.ActivityFields{Name: "Run", Points: 30, Date: "2025-01-15"}).
					Return(&models.ActivityDB{ID: 10, UserID: 1, Name: "Run", Points: 30, Date: "2025-01-15"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "blank name",
			user: user,
			body: `{"name":"   ","points":30}`,
			mockSetup: func(m *MockActivityAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrInvalidActivityName)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Valid activity name is required"}`,
		},
		{
			name: "points out of range",
			user: user,
			body: `{"name":"Run","points":1001}`,
			mockSetup: func(m *MockActivityAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrInvalidActivityPoints)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Points must be a number between 1 and 1000"}`,
		},
		{
			name:         "non-numeric points",
			user:         user,
			body:         `{"name":"Run","points":"thirty"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "fractional points",
			user:         user,
			body:         `{"name":"Run","points":30.5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Points must be a number between 1 and 1000"}`,
		},
		{
			name: "timestamp instead of calendar date",
			user: user,
			body: `{"name":"Run","points":30,"date":"2025-01-15T00:00:00Z"}`,
			mockSetup: func(m *MockActivityAdder) {
				m.EXPECT().
					Add(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrInvalidActivityDate)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Date must be in YYYY-MM-DD format"}`,
		},
		{
			name:         "no resolved user",
			user:         nil,
			body:         `{"name":"Run","points":30}`,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockActivityAdder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateActivityHandler(mockSvc)

			req := authedRequest(t, http.MethodPost, "/activities", tt.body, tt.user)
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestCreateActivityHandler_ReturnsStoredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityAdder(ctrl)
	mockSvc.EXPECT().
		Add(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.ActivityDB{
			ID: 10, UserID: 1, Name: "Run", Points: 30,
			Date: "2025-01-15", Host: "", Description: "",
		}, nil)

	handler := NewCreateActivityHandler(mockSvc)

	req := authedRequest(t, http.MethodPost, "/activities",
		`{"name":"Run","points":30,"date":"2025-01-15"}`,
		&models.User{ID: 1})
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
	assert.Contains(t, rec.Body.String(), `"user_id":1`)
	assert.Contains(t, rec.Body.String(), `"host":""`)
	assert.Contains(t, rec.Body.String(), `"description":""`)
}
