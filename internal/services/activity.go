package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

// Error variables
var (
	ErrInvalidActivityName   = errors.New("valid activity name is required")
	ErrInvalidActivityPoints = errors.New("points must be between 1 and 1000")
	ErrInvalidActivityDate   = errors.New("date must be a calendar date")
	ErrActivityNotFound      = errors.New("activity not found")
)

// Field limits applied before any storage access.
const (
	maxNameLength        = 100
	maxHostLength        = 100
	maxDescriptionLength = 200
	minPoints            = 1
	maxPoints            = 1000
)

// ActivityReader defines read-only operations over activities.
type ActivityReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.ActivityDB, error)
}

// ActivityWriter defines write operations over activities. Update and
// Delete are scoped by both activity id and owner.
type ActivityWriter interface {
	Save(ctx context.Context, userID int64, fields models.ActivityFields) (*models.ActivityDB, error)
	Update(ctx context.Context, userID, activityID int64, fields models.ActivityFields) (*models.ActivityDB, error)
	Delete(ctx context.Context, userID, activityID int64) (bool, error)
}

// AggregateInvalidator drops cached aggregates for a user after a
// mutation.
type AggregateInvalidator interface {
	Invalidate(ctx context.Context, userID int64) error
}

// ActivityService implements the owner-scoped activity ledger.
type ActivityService struct {
	reader      ActivityReader
	writer      ActivityWriter
	invalidator AggregateInvalidator
}

// NewActivityService creates a new ActivityService instance.
func NewActivityService(reader ActivityReader, writer ActivityWriter, invalidator AggregateInvalidator) *ActivityService {
	return &ActivityService{
		reader:      reader,
		writer:      writer,
		invalidator: invalidator,
	}
}

// sanitizeFields validates and normalizes the editable fields: name is
// required after trimming, points must be in [1, 1000], the date must
// be a YYYY-MM-DD calendar date (defaulting to today), and free-text
// fields are trimmed and truncated.
func sanitizeFields(fields models.ActivityFields) (models.ActivityFields, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return models.ActivityFields{}, ErrInvalidActivityName
	}
	if fields.Points < minPoints || fields.Points > maxPoints {
		return models.ActivityFields{}, ErrInvalidActivityPoints
	}

	date := strings.TrimSpace(fields.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.ActivityFields{}, ErrInvalidActivityDate
	}

	return models.ActivityFields{
		Name:        truncate(name, maxNameLength),
		Points:      fields.Points,
		Date:        date,
		Host:        truncate(strings.TrimSpace(fields.Host), maxHostLength),
		Description: truncate(strings.TrimSpace(fields.Description), maxDescriptionLength),
	}, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// Add validates the fields and stores a new activity for userID.
func (svc *ActivityService) Add(ctx context.Context, userID int64, fields models.ActivityFields) (*models.ActivityDB, error) {
	sanitized, err := sanitizeFields(fields)
	if err != nil {
		return nil, err
	}

	activity, err := svc.writer.Save(ctx, userID, sanitized)
	if err != nil {
		logger.Log.Errorw("failed to save activity", "user_id", userID, "error", err)
		return nil, err
	}

	svc.invalidate(ctx, userID)
	return activity, nil
}

// List returns all activities owned by userID, newest first. A user
// with no activities gets an empty list, not an error.
func (svc *ActivityService) List(ctx context.Context, userID int64) ([]models.ActivityDB, error) {
	activities, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list activities", "user_id", userID, "error", err)
		return nil, err
	}
	if activities == nil {
		activities = []models.ActivityDB{}
	}
	return activities, nil
}

// Update validates the fields and replaces the activity matching both
// activityID and userID. A nonexistent id and a foreign-owned id fail
// identically with ErrActivityNotFound.
func (svc *ActivityService) Update(ctx context.Context, userID, activityID int64, fields models.ActivityFields) (*models.ActivityDB, error) {
	sanitized, err := sanitizeFields(fields)
	if err != nil {
		return nil, err
	}

	activity, err := svc.writer.Update(ctx, userID, activityID, sanitized)
	if err != nil {
		logger.Log.Errorw("failed to update activity", "user_id", userID, "activity_id", activityID, "error", err)
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	svc.invalidate(ctx, userID)
	return activity, nil
}

// Delete removes the activity matching both activityID and userID,
// with the same not-found collapsing as Update.
func (svc *ActivityService) Delete(ctx context.Context, userID, activityID int64) error {
	deleted, err := svc.writer.Delete(ctx, userID, activityID)
	if err != nil {
		logger.Log.Errorw("failed to delete activity", "user_id", userID, "activity_id", activityID, "error", err)
		return err
	}
	if !deleted {
		return ErrActivityNotFound
	}

	svc.invalidate(ctx, userID)
	return nil
}

// invalidate drops the user's cached aggregates. A failed invalidation
// never fails the mutation; the cache entry expires on its own TTL.
func (svc *ActivityService) invalidate(ctx context.Context, userID int64) {
	if err := svc.invalidator.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate aggregates", "user_id", userID, "error", err)
	}
}
