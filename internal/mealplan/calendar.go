package mealplan

import "time"

const dateLayout = "2006-01-02"

// GridSize is the fixed number of cells in a month grid: 6 weeks of 7
// days, regardless of month length, so callers render a constant
// 6-row layout without per-month branching.
const GridSize = 42

// BuildMonthGrid derives the calendar grid for the month containing
// anchor. Leading cells from the previous month pad the first row so
// the grid always starts on Sunday; trailing next-month cells fill to
// exactly GridSize. Each cell's meals are the entries whose date
// equals the cell's date, in input order. now decides the IsToday
// flag, which is only ever set on a current-month cell.
func BuildMonthGrid(anchor time.Time, entries []Entry, now time.Time) []CalendarDay {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDate := groupByDate(entries)
	today := now.Format(dateLayout)

	days := make([]CalendarDay, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(dateLayout)
		current := d.Month() == anchor.Month()

		days = append(days, CalendarDay{
			Date:           date,
			Meals:          mealsFor(byDate, date),
			IsToday:        current && date == today,
			IsCurrentMonth: current,
		})
	}

	return days
}

// RangeGrouping buckets entries by date over every calendar date from
// start to end inclusive. Dates without entries still get an empty
// bucket so a printed calendar shows "no meals" rows instead of
// skipping the day. start after end yields an empty map, since date
// pickers hand over unconstrained ranges.
func RangeGrouping(start, end time.Time, entries []Entry) map[string][]Entry {
	grouped := make(map[string][]Entry)

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	byDate := groupByDate(entries)

	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		grouped[date] = mealsFor(byDate, date)
	}

	return grouped
}

func groupByDate(entries []Entry) map[string][]Entry {
	byDate := make(map[string][]Entry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	return byDate
}

func mealsFor(byDate map[string][]Entry, date string) []Entry {
	if meals, ok := byDate[date]; ok {
		return meals
	}
	return []Entry{}
}
