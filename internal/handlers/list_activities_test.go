package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/actrac/actrac-server/internal/models"
)

func TestListActivitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Username: "john", Email: "john@example.com"}

	t.Run("returns activities newest first", func(t *testing.T) {
		mockSvc := NewMockActivityLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), int64(1)).
			Return([]models.ActivityDB{
				{ID: 2, UserID: 1, Name: "Swim", Points: 20, Date: "2025-01-16"},
				{ID: 1, UserID: 1, Name: "Run", Points: 30, Date: "2025-01-15"},
			}, nil)

		handler := NewListActivitiesHandler(mockSvc)

		req := authedRequest(t, http.MethodGet, "/activities", "", user)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Swim"`)
		assert.Contains(t, rec.Body.String(), `"name":"Run"`)
	})

	t.Run("empty ownership yields empty array", func(t *testing.T) {
		mockSvc := NewMockActivityLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), int64(1)).
			Return([]models.ActivityDB{}, nil)

		handler := NewListActivitiesHandler(mockSvc)

		req := authedRequest(t, http.MethodGet, "/activities", "", user)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := NewMockActivityLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), int64(1)).
			Return(nil, errors.New("db error"))

		handler := NewListActivitiesHandler(mockSvc)

		req := authedRequest(t, http.MethodGet, "/activities", "", user)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to retrieve activities"}`, rec.Body.String())
	})

	t.Run("no resolved user", func(t *testing.T) {
		handler := NewListActivitiesHandler(NewMockActivityLister(ctrl))

		req := authedRequest(t, http.MethodGet, "/activities", "", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
