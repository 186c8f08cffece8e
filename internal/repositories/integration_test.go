package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/actrac/actrac-server/internal/migrations"
	"github.com/actrac/actrac-server/internal/models"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(ctx, db))

	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	userWrite := NewUserWriteRepository(db)
	userRead := NewUserReadRepository(db)
	activityWrite := NewActivityWriteRepository(db)
	activityRead := NewActivityReadRepository(db)

	alice, err := userWrite.Save(ctx, "alice", "alice@example.com", "hash-a")
	require.NoError(t, err)
	bob, err := userWrite.Save(ctx, "bob", "bob@example.com", "hash-b")
	require.NoError(t, err)

	t.Run("duplicate username maps to ErrDuplicateUser", func(t *testing.T) {
		_, err := userWrite.Save(ctx, "alice", "other@example.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("duplicate email maps to ErrDuplicateUser", func(t *testing.T) {
		_, err := userWrite.Save(ctx, "other", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("resolves users by username or email", func(t *testing.T) {
		username := "alice"
		user, err := userRead.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, "hash-a", user.PasswordHash)

		email := "bob@example.com"
		user, err = userRead.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, bob.ID, user.ID)

		ghost := "ghost"
		user, err = userRead.GetByUsernameOrEmail(ctx, &ghost, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID omits credentials", func(t *testing.T) {
		user, err := userRead.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, &models.User{ID: alice.ID, Username: "alice", Email: "alice@example.com"}, user)

		user, err = userRead.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	var first, second, third *models.ActivityDB

	t.Run("activity insert returns the stored row", func(t *testing.T) {
		first, err = activityWrite.Save(ctx, alice.ID, models.ActivityFields{
			Name: "Running", Points: 10, Date: "2026-08-27", Host: "Park", Description: "Morning run",
		})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, first.UserID)
		assert.Equal(t, "Running", first.Name)
		assert.False(t, first.CreatedAt.IsZero())

		second, err = activityWrite.Save(ctx, alice.ID, models.ActivityFields{
			Name: "Cycling", Points: 50, Date: "2026-08-28",
		})
		require.NoError(t, err)

		third, err = activityWrite.Save(ctx, bob.ID, models.ActivityFields{
			Name: "Swimming", Points: 30, Date: "2026-08-29",
		})
		require.NoError(t, err)
	})

	t.Run("list is scoped to the owner and newest first", func(t *testing.T) {
		activities, err := activityRead.ListByUserID(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, second.ID, activities[0].ID)
		assert.Equal(t, first.ID, activities[1].ID)

		activities, err = activityRead.ListByUserID(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, third.ID, activities[0].ID)
	})

	t.Run("stats aggregate only the owner's rows", func(t *testing.T) {
		stats, err := activityRead.GetStatsByUserID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, &models.ActivityStatsDB{
			TotalActivities: 2,
			TotalPoints:     60,
			AveragePoints:   30,
			MaxPoints:       50,
			MinPoints:       10,
		}, stats)

		total, err := activityRead.GetTotalByUserID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, total)
	})

	t.Run("stats on an empty ownership are all zero", func(t *testing.T) {
		carol, err := userWrite.Save(ctx, "carol", "carol@example.com", "hash-c")
		require.NoError(t, err)

		stats, err := activityRead.GetStatsByUserID(ctx, carol.ID)
		require.NoError(t, err)
		assert.Equal(t, &models.ActivityStatsDB{}, stats)

		total, err := activityRead.GetTotalByUserID(ctx, carol.ID)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("update is scoped to the owner", func(t *testing.T) {
		updated, err := activityWrite.Update(ctx, alice.ID, first.ID, models.ActivityFields{
			Name: "Trail running", Points: 15, Date: "2026-08-27",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Trail running", updated.Name)
		assert.Equal(t, 15, updated.Points)

		foreign, err := activityWrite.Update(ctx, bob.ID, first.ID, models.ActivityFields{
			Name: "Hijacked", Points: 1, Date: "2026-08-29",
		})
		assert.NoError(t, err)
		assert.Nil(t, foreign)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		deleted, err := activityWrite.Delete(ctx, bob.ID, first.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = activityWrite.Delete(ctx, alice.ID, first.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = activityWrite.Delete(ctx, alice.ID, first.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
