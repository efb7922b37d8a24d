package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// A day counts as half-day when fewer hours than this were worked.
	halfDayThresholdHours = 5.0
)

// AttendanceUseCase records daily check-ins/outs and builds the month
// calendar view.
type AttendanceUseCase struct {
	records repository.AttendanceRepository
}

// NewAttendanceUseCase builds the attendance use case.
func NewAttendanceUseCase(records repository.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{records: records}
}

// CheckIn records the start of today's working day. Checking in twice on the
// same day fails with ErrAlreadyCheckedIn.
func (uc *AttendanceUseCase) CheckIn(userID string) (*dto.CheckResponse, error) {
	now := time.Now()
	today := midnight(now)

	rec, err := uc.records.GetByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.CheckIn != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	if rec == nil {
		rec = &entity.AttendanceRecord{
			ID:     uuid.New().String(),
			UserID: userID,
			Date:   today,
		}
		rec.CheckIn = &now
		rec.Status = entity.AttendancePresent
		if err := uc.records.Create(rec); err != nil {
			return nil, err
		}
	} else {
		rec.CheckIn = &now
		rec.Status = entity.AttendancePresent
		if err := uc.records.Update(rec); err != nil {
			return nil, err
		}
	}
	return toCheckResponse(rec), nil
}

// CheckOut records the end of today's working day. It requires a prior
// check-in (ErrNotCheckedIn) and rejects a second check-out. Short days are
// downgraded to half-day.
func (uc *AttendanceUseCase) CheckOut(userID string) (*dto.CheckResponse, error) {
	now := time.Now()
	today := midnight(now)

	rec, err := uc.records.GetByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CheckIn == nil {
		return nil, domain.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return nil, domain.ErrValidation
	}

	rec.CheckOut = &now
	if rec.HoursWorked() < halfDayThresholdHours {
		rec.Status = entity.AttendanceHalfDay
	} else {
		rec.Status = entity.AttendancePresent
	}
	if err := uc.records.Update(rec); err != nil {
		return nil, err
	}
	return toCheckResponse(rec), nil
}

// MonthSummary builds the calendar for one month: a slice with one entry per
// day plus the stat counters the dashboard shows above it. Days without a
// record (weekends, future days, unrecorded absences) carry an empty status.
func (uc *AttendanceUseCase) MonthSummary(userID string, year int, month time.Month) (*dto.MonthSummaryResponse, error) {
	recs, err := uc.records.ListByUserMonth(userID, year, month)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int]*entity.AttendanceRecord, len(recs))
	for _, r := range recs {
		byDay[r.Date.Day()] = r
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	out := &dto.MonthSummaryResponse{
		Month: fmt.Sprintf("%s %d", month.String(), year),
		Days:  make([]dto.DayAttendance, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		day := dto.DayAttendance{Date: date.Format(dateLayout)}
		if r, ok := byDay[d]; ok {
			day.Status = r.Status
			if r.CheckIn != nil {
				day.CheckIn = r.CheckIn.Format(timeLayout)
			}
			if r.CheckOut != nil {
				day.CheckOut = r.CheckOut.Format(timeLayout)
			}
			switch r.Status {
			case entity.AttendancePresent:
				out.PresentDays++
			case entity.AttendanceHalfDay:
				out.HalfDays++
			case entity.AttendanceLeave:
				out.LeaveDays++
			}
		}
		out.Days = append(out.Days, day)
	}
	out.WorkingDays = elapsedDays(year, month, daysInMonth)
	return out, nil
}

// elapsedDays counts the days of the month that have already passed: the
// current day-of-month for the current month, the full month for past
// months, zero for future ones.
func elapsedDays(year int, month time.Month, daysInMonth int) int {
	now := time.Now()
	switch {
	case year == now.Year() && month == now.Month():
		return now.Day()
	case year < now.Year() || (year == now.Year() && month < now.Month()):
		return daysInMonth
	default:
		return 0
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toCheckResponse(r *entity.AttendanceRecord) *dto.CheckResponse {
	out := &dto.CheckResponse{
		Date:   r.Date.Format(dateLayout),
		Status: r.Status,
		Hours:  r.HoursWorked(),
	}
	if r.CheckIn != nil {
		out.CheckIn = r.CheckIn.Format(timeLayout)
	}
	if r.CheckOut != nil {
		out.CheckOut = r.CheckOut.Format(timeLayout)
	}
	return out
}
