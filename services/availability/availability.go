// Package availability turns a trainer's recurring weekly slots into concrete
// bookable calendar dates. Everything here is a pure function of its inputs.
package availability

import (
	"iter"
	"time"

	"fitbook/models"
)

// weekdayNames maps the day names stored on trainer slots to Go weekdays.
var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// daySet collects the weekdays covered by the given slots. Slots with a day
// name that does not parse are skipped rather than failing the whole set.
func daySet(slots []models.TimeSlot) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, len(slots))
	for _, s := range slots {
		if wd, ok := weekdayNames[s.Day]; ok {
			days[wd] = true
		}
	}
	return days
}

// IsDateAvailable reports whether the date's weekday is covered by any of the
// trainer's slots. This is the same membership test ResolveAvailableDates
// applies, so the two can never disagree about a date inside the horizon.
func IsDateAvailable(date time.Time, slots []models.TimeSlot) bool {
	return daySet(slots)[date.Weekday()]
}

// ResolveAvailableDates yields the concrete bookable dates between tomorrow
// and now+horizonDays (inclusive) whose weekday is covered by the slots.
// The sequence is lazy, finite, and can be ranged over more than once.
func ResolveAvailableDates(slots []models.TimeSlot, horizonDays int, now time.Time) iter.Seq[time.Time] {
	days := daySet(slots)
	return func(yield func(time.Time) bool) {
		if horizonDays <= 0 || len(days) == 0 {
			return
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for i := 1; i <= horizonDays; i++ {
			d := today.AddDate(0, 0, i)
			if days[d.Weekday()] {
				if !yield(d) {
					return
				}
			}
		}
	}
}
