package dao

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, InitTables(db))

	return db
}

func mustInsertUser(t *testing.T, db *gorm.DB, username, designation, pin string) User {
	t.Helper()

	user, err := NewUserDAO(db).Insert(context.Background(), User{
		Username:    username,
		Designation: designation,
		PIN:         pin,
	})
	require.NoError(t, err)

	return user
}

func mustInsertEvent(t *testing.T, db *gorm.DB, name, status string, userIDs []uint) Event {
	t.Helper()

	event, err := NewEventDAO(db).InsertWithEntitlements(context.Background(), Event{
		Name:   name,
		Status: status,
	}, userIDs)
	require.NoError(t, err)

	return event
}
