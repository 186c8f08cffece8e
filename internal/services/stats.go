package services

import (
	"context"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

// pointsGoal is the fixed goal every user tracks progress against.
const pointsGoal = 100

// AggregateReader provides the aggregate queries the stats service
// builds its summaries from.
type AggregateReader interface {
	GetStatsByUserID(ctx context.Context, userID int64) (*models.ActivityStatsDB, error)
	GetTotalByUserID(ctx context.Context, userID int64) (int, error)
}

// StatsService computes per-user point totals and statistics.
type StatsService struct {
	reader AggregateReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader AggregateReader) *StatsService {
	return &StatsService{reader: reader}
}

// Total returns the user's points total and how many points remain to
// the goal. Remaining is clamped at zero once the goal is passed.
func (svc *StatsService) Total(ctx context.Context, userID int64) (*models.TotalSummary, error) {
	total, err := svc.reader.GetTotalByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to compute total", "user_id", userID, "error", err)
		return nil, err
	}

	return &models.TotalSummary{
		Total:     total,
		Remaining: remainingToGoal(total),
	}, nil
}

// Stats returns the full statistics summary for the user. All values
// are zero when the user has no activities.
func (svc *StatsService) Stats(ctx context.Context, userID int64) (*models.StatsSummary, error) {
	stats, err := svc.reader.GetStatsByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to compute stats", "user_id", userID, "error", err)
		return nil, err
	}

	return &models.StatsSummary{
		TotalActivities: stats.TotalActivities,
		TotalPoints:     stats.TotalPoints,
		AveragePoints:   stats.AveragePoints,
		MaxPoints:       stats.MaxPoints,
		MinPoints:       stats.MinPoints,
		Remaining:       remainingToGoal(stats.TotalPoints),
	}, nil
}

func remainingToGoal(total int) int {
	remaining := pointsGoal - total
	if remaining < 0 {
		return 0
	}
	return remaining
}
