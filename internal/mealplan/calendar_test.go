package mealplan

import (
	"testing"
	"time"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGrid_Always42Cells(t *testing.T) {
	months := []time.Time{
		date(2025, time.February, 1),  // 28 days starting Saturday
		date(2025, time.March, 15),    // 31 days
		date(2024, time.February, 1),  // leap year
		date(2025, time.June, 1),      // month starting on Sunday
		date(2026, time.August, 31),   // 31 days, 6 weeks needed
	}

	for _, anchor := range months {
		days := BuildMonthGrid(anchor, nil, date(2025, time.January, 1))
		if len(days) != GridSize {
			t.Errorf("%s: expected %d cells, got %d", anchor.Format("2006-01"), GridSize, len(days))
		}
	}
}

func TestBuildMonthGrid_StartsOnSunday(t *testing.T) {
	days := BuildMonthGrid(date(2025, time.March, 10), nil, date(2025, time.January, 1))

	first, err := time.Parse(dateLayout, days[0].Date)
	if err != nil {
		t.Fatalf("bad first cell date: %v", err)
	}
	if first.Weekday() != time.Sunday {
		t.Errorf("expected grid to start on Sunday, got %s", first.Weekday())
	}

	// the cell 7 positions before the first current-month cell is a Sunday
	firstCurrent := -1
	for i, d := range days {
		if d.IsCurrentMonth {
			firstCurrent = i
			break
		}
	}
	if firstCurrent < 0 {
		t.Fatal("no current-month cell found")
	}
	if firstCurrent >= 7 {
		idx := firstCurrent - 7
		cell, _ := time.Parse(dateLayout, days[idx].Date)
		if cell.Weekday() != time.Sunday {
			t.Errorf("expected cell 7 before first current-month cell to be Sunday, got %s", cell.Weekday())
		}
	}
}

func TestBuildMonthGrid_PaddingAndFlags(t *testing.T) {
	// March 2025 starts on a Saturday: 6 leading February cells
	days := BuildMonthGrid(date(2025, time.March, 1), nil, date(2025, time.March, 15))

	for i := 0; i < 6; i++ {
		if days[i].IsCurrentMonth {
			t.Errorf("cell %d: expected previous-month padding", i)
		}
	}
	if days[6].Date != "2025-03-01" || !days[6].IsCurrentMonth {
		t.Errorf("expected cell 6 to be 2025-03-01 in current month, got %+v", days[6])
	}

	// trailing cells pad to 42 even when a fifth week would suffice
	last := days[GridSize-1]
	if last.IsCurrentMonth {
		t.Error("expected trailing cell to be next-month padding")
	}

	// isToday set exactly once, on the current-month cell
	todayCount := 0
	for _, d := range days {
		if d.IsToday {
			todayCount++
			if d.Date != "2025-03-15" {
				t.Errorf("expected today to be 2025-03-15, got %s", d.Date)
			}
			if !d.IsCurrentMonth {
				t.Error("expected today cell to be in current month")
			}
		}
	}
	if todayCount != 1 {
		t.Errorf("expected exactly 1 today cell, got %d", todayCount)
	}
}

func TestBuildMonthGrid_TodayOutsideMonth(t *testing.T) {
	days := BuildMonthGrid(date(2025, time.March, 1), nil, date(2025, time.July, 4))
	for _, d := range days {
		if d.IsToday {
			t.Errorf("expected no today cell when now is outside the month, got %s", d.Date)
		}
	}
}

func TestBuildMonthGrid_BucketsMeals(t *testing.T) {
	entries := []Entry{
		{ID: "1", Date: "2025-03-10", MealType: Dinner, Dish: dish.Dish{ID: "2", Title: "Chicken Teriyaki Bowl"}},
		{ID: "2", Date: "2025-03-10", MealType: Breakfast, Dish: dish.Dish{ID: "6", Title: "Caesar Salad"}},
		{ID: "3", Date: "2025-04-01", MealType: Lunch, Dish: dish.Dish{ID: "1", Title: "Spaghetti Carbonara"}},
	}

	days := BuildMonthGrid(date(2025, time.March, 1), entries, date(2025, time.January, 1))

	var target *CalendarDay
	for i := range days {
		if days[i].Date == "2025-03-10" {
			target = &days[i]
		}
	}
	if target == nil {
		t.Fatal("expected a 2025-03-10 cell")
	}
	if len(target.Meals) != 2 {
		t.Fatalf("expected 2 meals on 2025-03-10, got %d", len(target.Meals))
	}
	// input order, no sorting within a day
	if target.Meals[0].ID != "1" || target.Meals[1].ID != "2" {
		t.Errorf("expected meals in input order, got %s then %s", target.Meals[0].ID, target.Meals[1].ID)
	}

	// 2025-04-01 falls inside the trailing padding of the March grid
	for _, d := range days {
		if d.Date == "2025-04-01" && len(d.Meals) != 1 {
			t.Errorf("expected padding cell to carry its meal, got %d", len(d.Meals))
		}
	}
}

func TestRangeGrouping_EmptyBuckets(t *testing.T) {
	grouped := RangeGrouping(date(2025, time.March, 10), date(2025, time.March, 12), nil)

	if len(grouped) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(grouped))
	}
	for _, day := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
		meals, ok := grouped[day]
		if !ok {
			t.Errorf("expected bucket for %s", day)
		}
		if len(meals) != 0 {
			t.Errorf("expected empty bucket for %s, got %d", day, len(meals))
		}
	}
}

func TestRangeGrouping_StartAfterEnd(t *testing.T) {
	grouped := RangeGrouping(date(2025, time.March, 12), date(2025, time.March, 10), nil)
	if len(grouped) != 0 {
		t.Errorf("expected empty map for inverted range, got %d buckets", len(grouped))
	}
}

func TestRangeGrouping_BucketsByExactDate(t *testing.T) {
	entries := []Entry{
		{ID: "1", Date: "2025-03-10", MealType: Dinner},
		{ID: "2", Date: "2025-03-12", MealType: Lunch},
		{ID: "3", Date: "2025-03-20", MealType: Snack}, // outside range
	}

	grouped := RangeGrouping(date(2025, time.March, 10), date(2025, time.March, 12), entries)

	if len(grouped) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(grouped))
	}
	if len(grouped["2025-03-10"]) != 1 || grouped["2025-03-10"][0].ID != "1" {
		t.Errorf("expected entry 1 on 2025-03-10")
	}
	if len(grouped["2025-03-11"]) != 0 {
		t.Errorf("expected empty bucket on 2025-03-11")
	}
	if len(grouped["2025-03-12"]) != 1 || grouped["2025-03-12"][0].ID != "2" {
		t.Errorf("expected entry 2 on 2025-03-12")
	}
	if _, ok := grouped["2025-03-20"]; ok {
		t.Error("expected out-of-range entry to be excluded")
	}
}

func TestRangeGrouping_SingleDay(t *testing.T) {
	day := date(2025, time.March, 10)
	grouped := RangeGrouping(day, day, nil)
	if len(grouped) != 1 {
		t.Errorf("expected 1 bucket for single-day range, got %d", len(grouped))
	}
}
