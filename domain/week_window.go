package domain

import "time"

// WeekWindow maps (year, weekNumber) to the inclusive UTC window of that week.
//
// Weeks start on Sunday: week 1 begins on the Sunday on or before January 1.
// weekNumber is not clamped, so values outside [1, 53] land in the adjacent
// years.
func WeekWindow(year, weekNumber int) (start, end time.Time) {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offsetDays := (weekNumber-1)*7 - int(jan1.Weekday())

	start = jan1.AddDate(0, 0, offsetDays)
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// WeekOf returns the (year, weekNumber) whose window contains t.
//
// A week that straddles New Year belongs to the year of its Saturday, so the
// week holding January 1 is always week 1 of that year.
func WeekOf(t time.Time) (int, int) {
	t = t.UTC()
	saturday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, int(time.Saturday-t.Weekday()))

	year := saturday.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return year, (saturday.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

// PreviousWeek returns the week immediately before (year, weekNumber).
// Week 1 rolls back to the last week of the prior year, which is 52 or 53
// depending on where January 1 falls.
func PreviousWeek(year, weekNumber int) (int, int) {
	start, _ := WeekWindow(year, weekNumber)
	return WeekOf(start.AddDate(0, 0, -7))
}

// CurrentWeek returns the week containing now.
func CurrentWeek(now time.Time) (int, int) {
	return WeekOf(now)
}

// CompletedWeek returns the most recent week that has fully ended at now.
func CompletedWeek(now time.Time) (int, int) {
	return WeekOf(now.UTC().AddDate(0, 0, -7))
}
