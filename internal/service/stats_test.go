package service_test

import (
	"testing"
	"time"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/service"
)

func statsFixture(now time.Time) model.AppState {
	state := model.DefaultState()
	state.Profile.DailyCalorieGoal = 2000
	state.WaterIntake = 1250

	at := func(d time.Time, hour int) int64 {
		year, month, day := d.Date()
		return time.Date(year, month, day, hour, 0, 0, 0, d.Location()).UnixMilli()
	}

	state.FoodLogs = []model.LogEntry{
		{ID: "a", FoodName: "Dinner", Calories: 700, Protein: 40, Carbs: 60, Fats: 25, Timestamp: at(now, 19)},
		{ID: "b", FoodName: "Lunch", Calories: 600.4, Protein: 35, Carbs: 55, Fats: 20, Timestamp: at(now, 13)},
		{ID: "c", FoodName: "Yesterday", Calories: 2200, Timestamp: at(now.AddDate(0, 0, -1), 12)},
		{ID: "d", FoodName: "Last week", Calories: 900, Timestamp: at(now.AddDate(0, 0, -8), 12)},
	}
	return state
}

func TestTodaySummaryFor(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 21, 30, 0, 0, time.Local)
	s := service.TodaySummaryFor(statsFixture(now), now)

	if s.IntakeCalories != 1300 {
		t.Fatalf("expected 1300 kcal today, got %d", s.IntakeCalories)
	}
	if s.Entries != 2 {
		t.Fatalf("expected 2 entries today, got %d", s.Entries)
	}
	if s.ProteinG != 75 || s.CarbsG != 115 || s.FatsG != 45 {
		t.Fatalf("unexpected macros: %+v", s)
	}
	if s.RemainingCalories != 700 {
		t.Fatalf("expected 700 kcal remaining, got %d", s.RemainingCalories)
	}
	if s.WaterML != 1250 || s.WaterPercent != 50 {
		t.Fatalf("unexpected water progress: %+v", s)
	}
}

func TestTodaySummaryWaterPercentCapsAt100(t *testing.T) {
	t.Parallel()

	state := model.DefaultState()
	state.WaterIntake = 4000
	s := service.TodaySummaryFor(state, time.Now())
	if s.WaterPercent != 100 {
		t.Fatalf("expected cap at 100%%, got %d", s.WaterPercent)
	}
}

func TestWeeklyReportFor(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 21, 30, 0, 0, time.Local)
	r := service.WeeklyReportFor(statsFixture(now), now)

	if len(r.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(r.Days))
	}
	if r.Days[6].Date != "2026-03-14" || r.Days[0].Date != "2026-03-08" {
		t.Fatalf("expected oldest-first window ending today, got %s .. %s", r.Days[0].Date, r.Days[6].Date)
	}
	if r.Days[6].Calories != 1300 || r.Days[5].Calories != 2200 {
		t.Fatalf("unexpected per-day intake: %+v", r.Days)
	}
	// The 8-days-ago entry falls outside the window.
	if r.TotalCalories != 3500 {
		t.Fatalf("expected 3500 kcal total, got %d", r.TotalCalories)
	}
	if r.HighestDay == nil || r.HighestDay.Calories != 2200 {
		t.Fatalf("unexpected highest day: %+v", r.HighestDay)
	}
	if r.LowestDay == nil || r.LowestDay.Calories != 0 {
		t.Fatalf("unexpected lowest day: %+v", r.LowestDay)
	}
	// Only today (1300 <= 2000) counts as on target; yesterday overshot and
	// the other days have no entries.
	if r.DaysOnTarget != 1 {
		t.Fatalf("expected 1 day on target, got %d", r.DaysOnTarget)
	}
}
