package calendar

import "time"

// HolidaySet: skup datuma praznika, ključ je datum u obliku "2006-01-02"
type HolidaySet map[string]bool

const dateKey = "2006-01-02"

// NewHolidaySet: gradi skup iz liste datuma praznika
func NewHolidaySet(dates []time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d.Format(dateKey)] = true
	}
	return set
}

func (h HolidaySet) Contains(d time.Time) bool {
	return h[d.Format(dateKey)]
}

// IsWorkingDay: nedjelja nikad nije radni dan, subota ovisi o radniku,
// praznici se uvijek isključuju
func IsWorkingDay(d time.Time, worksSaturday bool, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Sunday:
		return false
	case time.Saturday:
		if !worksSaturday {
			return false
		}
	}
	return !holidays.Contains(d)
}

// WorkingDays: broj radnih dana u rasponu [start, end], uključivo
func WorkingDays(start, end time.Time, worksSaturday bool, holidays HolidaySet) int {
	if end.Before(start) {
		return 0
	}

	start = truncateDay(start)
	end = truncateDay(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, worksSaturday, holidays) {
			days++
		}
	}
	return days
}

// ReturnToWork: prvi radni dan nakon zadnjeg dana odsustva
func ReturnToWork(end time.Time, worksSaturday bool, holidays HolidaySet) time.Time {
	d := truncateDay(end).AddDate(0, 0, 1)
	for !IsWorkingDay(d, worksSaturday, holidays) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
