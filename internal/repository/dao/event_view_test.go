package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventViewDAOInsertIfAbsent(t *testing.T) {
	db := setupDB(t)
	viewDAO := NewEventViewDAO(db)
	ctx := context.Background()

	view := EventView{
		EventID:      1,
		UserID:       7,
		ViewDateTime: "2026-09-01 10:00:00",
	}

	require.NoError(t, viewDAO.InsertIfAbsent(ctx, view))

	// A repeated view of the same event must not add a second row.
	view.ViewDateTime = "2026-09-01 11:30:00"
	require.NoError(t, viewDAO.InsertIfAbsent(ctx, view))

	count, err := viewDAO.CountForUser(ctx, 1, 7)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// The first view's timestamp survives.
	var got EventView
	require.NoError(t, db.First(&got, "event_id = ? AND user_id = ?", 1, 7).Error)
	require.Equal(t, "2026-09-01 10:00:00", got.ViewDateTime)
}

func TestEventViewDAOCountForUserScopedByPair(t *testing.T) {
	db := setupDB(t)
	viewDAO := NewEventViewDAO(db)
	ctx := context.Background()

	require.NoError(t, viewDAO.InsertIfAbsent(ctx, EventView{EventID: 1, UserID: 7, ViewDateTime: "2026-09-01 10:00:00"}))
	require.NoError(t, viewDAO.InsertIfAbsent(ctx, EventView{EventID: 2, UserID: 7, ViewDateTime: "2026-09-01 10:05:00"}))
	require.NoError(t, viewDAO.InsertIfAbsent(ctx, EventView{EventID: 1, UserID: 8, ViewDateTime: "2026-09-01 10:10:00"}))

	count, err := viewDAO.CountForUser(ctx, 1, 7)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = viewDAO.CountForUser(ctx, 3, 7)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
