package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/services"
)

func TestStatsService_Total(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAggregateReader(ctrl)
	svc := services.NewStatsService(mockReader)
	ctx := context.Background()

	tests := []struct {
		name          string
		total         int
		readerErr     error
		wantRemaining int
		wantErr       bool
	}{
		{name: "below goal", total: 30, wantRemaining: 70},
		{name: "at goal", total: 100, wantRemaining: 0},
		{name: "past goal clamps to zero", total: 250, wantRemaining: 0},
		{name: "no activities", total: 0, wantRemaining: 100},
		{name: "reader error", readerErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetTotalByUserID(gomock.Any(), int64(1)).Return(tt.total, tt.readerErr)

			summary, err := svc.Total(ctx, 1)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, summary)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.total, summary.Total)
			assert.Equal(t, tt.wantRemaining, summary.Remaining)
		})
	}
}

func TestStatsService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockAggregateReader(ctrl)
	svc := services.NewStatsService(mockReader)
	ctx := context.Background()

	t.Run("three equal activities reach the goal", func(t *testing.T) {
		mockReader.EXPECT().GetStatsByUserID(gomock.Any(), int64(1)).Return(&models.ActivityStatsDB{
			TotalActivities: 3,
			TotalPoints:     120,
			AveragePoints:   40,
			MaxPoints:       40,
			MinPoints:       40,
		}, nil)

		summary, err := svc.Stats(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, &models.StatsSummary{
			TotalActivities: 3,
			TotalPoints:     120,
			AveragePoints:   40,
			MaxPoints:       40,
			MinPoints:       40,
			Remaining:       0,
		}, summary)
	})

	t.Run("no activities yields zero stats", func(t *testing.T) {
		mockReader.EXPECT().GetStatsByUserID(gomock.Any(), int64(1)).Return(&models.ActivityStatsDB{}, nil)

		summary, err := svc.Stats(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, &models.StatsSummary{Remaining: 100}, summary)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetStatsByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		summary, err := svc.Stats(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}
