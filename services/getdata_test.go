package services

import (
	"context"
	"testing"
	"time"

	"minesafety/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func TestGormUserDirectory(t *testing.T) {
	dir := NewGormUserDirectory(newTestDB(t))
	ctx := context.Background()

	users := []*model.User{
		{Name: "Ravi", Email: "ravi@mine.test", HashedPassword: "x", Role: model.RoleWorker},
		{Name: "Asha", Email: "asha@mine.test", HashedPassword: "x", Role: model.RoleWorker},
		{Name: "Meena", Email: "meena@mine.test", HashedPassword: "x", Role: model.RoleSupervisor},
		{Name: "Admin", Email: "admin@mine.test", HashedPassword: "x", Role: model.RoleAdmin},
	}
	for _, u := range users {
		require.NoError(t, dir.CreateUser(ctx, u))
		assert.Len(t, u.UserID, 36, "ids are generated uuids")
	}

	t.Run("find by id", func(t *testing.T) {
		found, err := dir.FindUserByID(ctx, users[2].UserID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, model.RoleSupervisor, found.Role)

		missing, err := dir.FindUserByID(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := dir.FindUserByEmail(ctx, "admin@mine.test")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, users[3].UserID, found.UserID)

		missing, err := dir.FindUserByEmail(ctx, "ghost@mine.test")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list by role", func(t *testing.T) {
		list, err := dir.ListUsersByRole(ctx, model.RoleWorker, model.RoleSupervisor)
		require.NoError(t, err)
		names := make([]string, len(list))
		for i, u := range list {
			names[i] = u.Name
		}
		assert.Equal(t, []string{"Asha", "Meena", "Ravi"}, names)
	})

	t.Run("update shift", func(t *testing.T) {
		u, err := dir.FindUserByID(ctx, users[0].UserID)
		require.NoError(t, err)
		date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
		u.ShiftLocation = "Pit 3"
		u.ShiftDate = &date
		require.NoError(t, dir.UpdateShift(ctx, u))

		again, err := dir.FindUserByID(ctx, users[0].UserID)
		require.NoError(t, err)
		assert.Equal(t, "Pit 3", again.ShiftLocation)
		require.NotNil(t, again.ShiftDate)
		assert.True(t, again.ShiftDate.Equal(date))
	})
}
