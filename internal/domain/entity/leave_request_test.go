package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays_SameDayIsOne(t *testing.T) {
	r := entity.LeaveRequest{
		StartDate: day(2026, time.January, 10),
		EndDate:   day(2026, time.January, 10),
	}
	assert.Equal(t, 1, r.DurationDays(), "a same-day leave spans one day")
}

func TestDurationDays_InclusiveRange(t *testing.T) {
	r := entity.LeaveRequest{
		StartDate: day(2026, time.January, 10),
		EndDate:   day(2026, time.January, 16),
	}
	assert.Equal(t, 7, r.DurationDays(), "both endpoints count")
}

func TestDurationDays_CrossesMonthBoundary(t *testing.T) {
	r := entity.LeaveRequest{
		StartDate: day(2026, time.January, 30),
		EndDate:   day(2026, time.February, 2),
	}
	assert.Equal(t, 4, r.DurationDays())
}

func TestDurationDays_IgnoresTimeOfDay(t *testing.T) {
	r := entity.LeaveRequest{
		StartDate: time.Date(2026, time.January, 10, 23, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 12, 1, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, r.DurationDays(), "only calendar dates matter")
}

func TestTerminal(t *testing.T) {
	assert.False(t, (&entity.LeaveRequest{Status: entity.LeavePending}).Terminal())
	assert.True(t, (&entity.LeaveRequest{Status: entity.LeaveApproved}).Terminal())
	assert.True(t, (&entity.LeaveRequest{Status: entity.LeaveRejected}).Terminal())
}

func TestInitials(t *testing.T) {
	u := entity.User{FirstName: "Sarah", LastName: "Johnson"}
	assert.Equal(t, "SJ", u.Initials())
	assert.Equal(t, "Sarah Johnson", u.FullName())
}
