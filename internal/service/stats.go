package service

import (
	"math"
	"time"

	"github.com/Alok-2331/NutriSnap/internal/model"
)

type TodaySummary struct {
	Date              string
	IntakeCalories    int
	ProteinG          float64
	CarbsG            float64
	FatsG             float64
	GoalCalories      int
	RemainingCalories int
	Entries           int
	WaterML           int
	WaterGoalML       int
	WaterPercent      int
}

type DayIntake struct {
	Date         string
	Weekday      string
	Calories     int
	GoalCalories int
}

type WeeklyReport struct {
	Days            []DayIntake
	TotalCalories   int
	AverageCalories float64
	HighestDay      *DayIntake
	LowestDay       *DayIntake
	DaysOnTarget    int
}

// TodaySummaryFor aggregates the day's food log against the profile goal and
// the water counter.
func TodaySummaryFor(state model.AppState, now time.Time) TodaySummary {
	start, end := dayBounds(now)

	s := TodaySummary{
		Date:         now.Format("2006-01-02"),
		GoalCalories: state.Profile.DailyCalorieGoal,
		WaterML:      state.WaterIntake,
		WaterGoalML:  model.WaterGoalML,
	}

	var calories float64
	for _, l := range state.FoodLogs {
		if l.Timestamp < start || l.Timestamp >= end {
			continue
		}
		calories += l.Calories
		s.ProteinG += l.Protein
		s.CarbsG += l.Carbs
		s.FatsG += l.Fats
		s.Entries++
	}
	s.IntakeCalories = int(math.Round(calories))
	s.RemainingCalories = s.GoalCalories - s.IntakeCalories

	pct := float64(s.WaterML) / float64(s.WaterGoalML) * 100
	if pct > 100 {
		pct = 100
	}
	s.WaterPercent = int(math.Round(pct))
	return s
}

// WeeklyReportFor summarizes the last seven days (oldest first, today last)
// of intake against the daily calorie goal.
func WeeklyReportFor(state model.AppState, now time.Time) WeeklyReport {
	report := WeeklyReport{Days: make([]DayIntake, 0, 7)}
	goal := state.Profile.DailyCalorieGoal

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start, end := dayBounds(day)

		var calories float64
		for _, l := range state.FoodLogs {
			if l.Timestamp >= start && l.Timestamp < end {
				calories += l.Calories
			}
		}
		report.Days = append(report.Days, DayIntake{
			Date:         day.Format("2006-01-02"),
			Weekday:      day.Format("Mon"),
			Calories:     int(math.Round(calories)),
			GoalCalories: goal,
		})
	}

	for i := range report.Days {
		d := &report.Days[i]
		report.TotalCalories += d.Calories
		if report.HighestDay == nil || d.Calories > report.HighestDay.Calories {
			report.HighestDay = d
		}
		if report.LowestDay == nil || d.Calories < report.LowestDay.Calories {
			report.LowestDay = d
		}
		if d.Calories > 0 && d.Calories <= goal {
			report.DaysOnTarget++
		}
	}
	report.AverageCalories = float64(report.TotalCalories) / 7

	return report
}

// dayBounds returns the local-midnight bounds of t's day in epoch
// milliseconds, end exclusive.
func dayBounds(t time.Time) (startMS, endMS int64) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli()
}
