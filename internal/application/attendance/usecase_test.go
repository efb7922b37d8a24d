package attendance_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflow-hr/dayflow-api/internal/application/attendance"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/infrastructure/memstore"
)

func newFixture() (*attendance.AttendanceUseCase, *memstore.AttendanceRepository) {
	store := memstore.New()
	repo := memstore.NewAttendanceRepository(store)
	return attendance.NewAttendanceUseCase(repo), repo
}

func TestCheckIn_Once(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.CheckIn("u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, out.Status)
	assert.NotEmpty(t, out.CheckIn)
	assert.Empty(t, out.CheckOut)

	_, err = uc.CheckIn("u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestCheckIn_IndependentPerUser(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CheckIn("u1")
	require.NoError(t, err)
	_, err = uc.CheckIn("u2")
	assert.NoError(t, err, "another user's punch is a separate record")
}

func TestCheckOut_RequiresCheckIn(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CheckOut("u1")
	assert.ErrorIs(t, err, domain.ErrNotCheckedIn)
}

// A check-out right after the check-in is a short day, so it downgrades to
// half-day; a second check-out is rejected.
func TestCheckOut_ImmediateIsHalfDay(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.CheckIn("u1")
	require.NoError(t, err)

	out, err := uc.CheckOut("u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceHalfDay, out.Status)
	assert.NotEmpty(t, out.CheckOut)

	_, err = uc.CheckOut("u1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMonthSummary_CountsAndCalendarShape(t *testing.T) {
	uc, repo := newFixture()

	mk := func(day int, status string, hours float64) {
		date := time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
		rec := &entity.AttendanceRecord{
			ID:     fmt.Sprintf("rec-%02d", day),
			UserID: "u1",
			Date:   date,
			Status: status,
		}
		if hours > 0 {
			in := date.Add(9 * time.Hour)
			out := in.Add(time.Duration(hours * float64(time.Hour)))
			rec.CheckIn, rec.CheckOut = &in, &out
		}
		require.NoError(t, repo.Create(rec))
	}

	mk(5, entity.AttendancePresent, 8.5)
	mk(6, entity.AttendancePresent, 8)
	mk(7, entity.AttendanceHalfDay, 4)
	mk(8, entity.AttendanceLeave, 0)

	out, err := uc.MonthSummary("u1", 2026, time.January)
	require.NoError(t, err)

	assert.Equal(t, "January 2026", out.Month)
	assert.Len(t, out.Days, 31, "one entry per calendar day")
	assert.Equal(t, 2, out.PresentDays)
	assert.Equal(t, 1, out.HalfDays)
	assert.Equal(t, 1, out.LeaveDays)

	assert.Equal(t, "2026-01-05", out.Days[4].Date)
	assert.Equal(t, entity.AttendancePresent, out.Days[4].Status)
	assert.Equal(t, "09:00", out.Days[4].CheckIn)
	assert.Empty(t, out.Days[0].Status, "days without a record stay blank")
}

func TestMonthSummary_OtherUsersExcluded(t *testing.T) {
	uc, repo := newFixture()
	require.NoError(t, repo.Create(&entity.AttendanceRecord{
		ID: "r1", UserID: "someone-else",
		Date:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Status: entity.AttendancePresent,
	}))

	out, err := uc.MonthSummary("u1", 2026, time.January)
	require.NoError(t, err)
	assert.Zero(t, out.PresentDays)
}
