package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysSkipsWeekend(t *testing.T) {
	// Pon 2026-08-24 do ned 2026-08-30: 5 radnih dana bez subote
	days := WorkingDays(day(2026, 8, 24), day(2026, 8, 30), false, nil)
	assert.Equal(t, 5, days)
}

func TestWorkingDaysWorksSaturday(t *testing.T) {
	// Isti raspon, radnik radi subotom: subota 29.8. se broji, nedjelja ne
	days := WorkingDays(day(2026, 8, 24), day(2026, 8, 30), true, nil)
	assert.Equal(t, 6, days)
}

func TestWorkingDaysExcludesHoliday(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{day(2026, 8, 25)}) // utorak praznik
	days := WorkingDays(day(2026, 8, 24), day(2026, 8, 28), false, holidays)
	assert.Equal(t, 4, days)
}

func TestWorkingDaysSpanningSaturdayWithoutSaturdayWork(t *testing.T) {
	// Pet 2026-08-28 do pon 2026-08-31: subota i nedjelja se ne broje
	days := WorkingDays(day(2026, 8, 28), day(2026, 8, 31), false, nil)
	assert.Equal(t, 2, days)
}

func TestWorkingDaysEndBeforeStart(t *testing.T) {
	assert.Equal(t, 0, WorkingDays(day(2026, 8, 28), day(2026, 8, 27), false, nil))
}

func TestWorkingDaysSingleDay(t *testing.T) {
	assert.Equal(t, 1, WorkingDays(day(2026, 8, 26), day(2026, 8, 26), false, nil))
	assert.Equal(t, 0, WorkingDays(day(2026, 8, 30), day(2026, 8, 30), false, nil)) // nedjelja
}

func TestReturnToWorkSkipsWeekend(t *testing.T) {
	// Odsustvo završava u petak, povratak je u ponedjeljak
	rtw := ReturnToWork(day(2026, 8, 28), false, nil)
	assert.Equal(t, day(2026, 8, 31), rtw)
}

func TestReturnToWorkSkipsHoliday(t *testing.T) {
	holidays := NewHolidaySet([]time.Time{day(2026, 8, 31)}) // ponedjeljak praznik
	rtw := ReturnToWork(day(2026, 8, 28), false, holidays)
	assert.Equal(t, day(2026, 9, 1), rtw)
}

func TestReturnToWorkSaturdayWorker(t *testing.T) {
	// Odsustvo završava u petak, radnik radi subotom: povratak već u subotu
	rtw := ReturnToWork(day(2026, 8, 28), true, nil)
	assert.Equal(t, day(2026, 8, 29), rtw)
}
