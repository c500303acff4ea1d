package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shiftwise/internal/storage"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var fixedNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

func openTestStore(t *testing.T) *storage.Database {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedShifts(t *testing.T, log *ShiftLog) {
	t.Helper()
	for _, s := range []Shift{
		{Date: "2025-01-10", StartTime: "09:10", TotalBreak: 0, WorkingHours: 8},
		{Date: "2025-01-13", StartTime: "10:00", TotalBreak: 60, WorkingHours: 9.25},
		{Date: "2025-01-14", StartTime: "09:30", TotalBreak: 45, WorkingHours: 9},
		{Date: "2025-01-15", StartTime: "09:00", TotalBreak: 30, WorkingHours: 8.5},
	} {
		_, err := log.Save(s)
		require.NoError(t, err)
	}
}
