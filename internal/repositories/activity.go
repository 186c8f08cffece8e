package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

type ActivityReadRepository struct {
	db *sqlx.DB
}

func NewActivityReadRepository(db *sqlx.DB) *ActivityReadRepository {
	return &ActivityReadRepository{db: db}
}

// ListByUserID returns all activities owned by userID, newest first.
func (r *ActivityReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.ActivityDB, error) {
	const query = `
		SELECT id, user_id, name, points, date, host, description, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var activities []models.ActivityDB
	if err := r.db.SelectContext(ctx, &activities, query, userID); err != nil {
		logger.Log.Errorw("activity list failed", "user_id", userID, "error", err)
		return nil, err
	}

	return activities, nil
}

// GetStatsByUserID computes the aggregate statistics over the user's
// activities. An empty ownership yields an all-zero row.
func (r *ActivityReadRepository) GetStatsByUserID(ctx context.Context, userID int64) (*models.ActivityStatsDB, error) {
	const query = `
		SELECT
			COUNT(*)                        AS total_activities,
			COALESCE(SUM(points), 0)        AS total_points,
			COALESCE(AVG(points), 0)        AS average_points,
			COALESCE(MAX(points), 0)        AS max_points,
			COALESCE(MIN(points), 0)        AS min_points
		FROM activities
		WHERE user_id = $1
	`

	var stats models.ActivityStatsDB
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		logger.Log.Errorw("activity stats failed", "user_id", userID, "error", err)
		return nil, err
	}

	return &stats, nil
}

// GetTotalByUserID returns the points total for the user, 0 when the
// user has no activities.
func (r *ActivityReadRepository) GetTotalByUserID(ctx context.Context, userID int64) (int, error) {
	const query = `
		SELECT COALESCE(SUM(points), 0)
		FROM activities
		WHERE user_id = $1
	`

	var total int
	if err := r.db.GetContext(ctx, &total, query, userID); err != nil {
		logger.Log.Errorw("activity total failed", "user_id", userID, "error", err)
		return 0, err
	}

	return total, nil
}

type ActivityWriteRepository struct {
	db *sqlx.DB
}

func NewActivityWriteRepository(db *sqlx.DB) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

// Save inserts a new activity for userID and returns the stored row.
func (r *ActivityWriteRepository) Save(ctx context.Context, userID int64, fields models.ActivityFields) (*models.ActivityDB, error) {
	const query = `
		INSERT INTO activities (user_id, name, points, date, host, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, user_id, name, points, date, host, description, created_at
	`

	var activity models.ActivityDB
	err := r.db.GetContext(ctx, &activity, query,
		userID, fields.Name, fields.Points, fields.Date, fields.Host, fields.Description)
	if err != nil {
		logger.Log.Errorw("activity insert failed", "user_id", userID, "error", err)
		return nil, err
	}

	return &activity, nil
}

// Update replaces all editable fields of the activity matching both id
// and userID. Returns (nil, nil) when no row matched, which covers both
// a nonexistent id and an id owned by another user.
func (r *ActivityWriteRepository) Update(ctx context.Context, userID, activityID int64, fields models.ActivityFields) (*models.ActivityDB, error) {
	const query = `
		UPDATE activities
		SET name = $1, points = $2, date = $3, host = $4, description = $5
		WHERE id = $6 AND user_id = $7
		RETURNING id, user_id, name, points, date, host, description, created_at
	`

	var activity models.ActivityDB
	err := r.db.GetContext(ctx, &activity, query,
		fields.Name, fields.Points, fields.Date, fields.Host, fields.Description,
		activityID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("activity update failed", "user_id", userID, "activity_id", activityID, "error", err)
		return nil, err
	}

	return &activity, nil
}

// Delete removes the activity matching both id and userID. The boolean
// reports whether a row was actually deleted.
func (r *ActivityWriteRepository) Delete(ctx context.Context, userID, activityID int64) (bool, error) {
	const query = `
		DELETE FROM activities
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, activityID, userID)
	if err != nil {
		logger.Log.Errorw("activity delete failed", "user_id", userID, "activity_id", activityID, "error", err)
		return false, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
