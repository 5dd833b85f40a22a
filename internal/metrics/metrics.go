// Package metrics holds the pure body-metric calculations: BMI, BMI
// classification, and the Mifflin-St Jeor daily calorie estimate.
package metrics

import (
	"math"

	"github.com/Alok-2331/NutriSnap/internal/model"
)

// ActivityMultipliers maps each activity level to its TDEE multiplier.
// Single source of truth - also used to validate activity-level input.
var ActivityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:        1.2,
	model.ActivityLightlyActive:    1.375,
	model.ActivityModeratelyActive: 1.55,
	model.ActivityVeryActive:       1.725,
	model.ActivityExtraActive:      1.9,
}

// Onboarding derives the calorie goal before the user's real height and
// activity level are known, so it runs with these fixed assumptions. The
// dashboard later recomputes BMI from the real height while the calorie goal
// keeps the assumed-height estimate; that mismatch is intentional and
// matches the shipped onboarding flow.
const (
	AssumedHeightCm     = 170
	OnboardingActivity  = model.ActivityModeratelyActive
	minDailyCalorieGoal = 800
)

// ComputeBMI returns weight/(height/100)^2. Callers guarantee positive
// inputs.
func ComputeBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

type BMIStatus struct {
	Label string
	Info  string
}

// ClassifyBMI buckets a BMI value. Boundaries 18.5, 25, and 30 belong to the
// higher band.
func ClassifyBMI(bmi float64) BMIStatus {
	switch {
	case bmi < 18.5:
		return BMIStatus{Label: "Underweight", Info: "Consider increasing calorie intake with nutrient-dense foods."}
	case bmi < 25:
		return BMIStatus{Label: "Healthy Weight", Info: "Great job! Maintain your current balanced diet and exercise."}
	case bmi < 30:
		return BMIStatus{Label: "Overweight", Info: "Try to incorporate more fiber and cardiovascular activity."}
	default:
		return BMIStatus{Label: "Obesity", Info: "Consult with a health professional for a tailored plan."}
	}
}

// EstimateDailyCalories computes a daily calorie target in kcal:
// Mifflin-St Jeor BMR, activity multiplier, then a fixed goal adjustment.
// Non-male genders take the female offset of the formula. The result is
// rounded and floored at a sane minimum.
func EstimateDailyCalories(weightKg, heightCm float64, age int, gender model.Gender, goal model.FitnessGoal, activityMultiplier float64) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier

	switch goal {
	case model.GoalWeightLoss:
		tdee -= 500
	case model.GoalWeightGain:
		tdee += 400
	case model.GoalMuscleGain:
		tdee += 200
	}

	kcal := int(math.Round(tdee))
	if kcal < minDailyCalorieGoal {
		kcal = minDailyCalorieGoal
	}
	return kcal
}

// OnboardingCalorieEstimate is the estimate shown during onboarding, before
// real height and activity level exist.
func OnboardingCalorieEstimate(weightKg float64, age int, gender model.Gender, goal model.FitnessGoal) int {
	return EstimateDailyCalories(weightKg, AssumedHeightCm, age, gender, goal, ActivityMultipliers[OnboardingActivity])
}
