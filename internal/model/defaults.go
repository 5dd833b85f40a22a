package model

// Water tracking targets, in milliliters.
const (
	WaterGoalML = 2500
	WaterStepML = 250
)

// DefaultProfile is the profile a fresh (or reset) installation starts with,
// shown until onboarding replaces it.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:             "Alex Johnson",
		Age:              28,
		Gender:           GenderMale,
		WeightKg:         78,
		HeightCm:         182,
		TargetWeightKg:   75,
		Goal:             GoalWeightLoss,
		ActivityLevel:    ActivityModeratelyActive,
		DailyCalorieGoal: 2100,
	}
}

// DefaultState is the documented recovery state: used on first run, after a
// reset, and whenever the persisted snapshot is missing or unreadable.
func DefaultState() AppState {
	return AppState{
		Profile:     DefaultProfile(),
		WaterIntake: 0,
		FoodLogs:    []LogEntry{},
		Favorites:   []FavoriteItem{},
		ChatHistory: []ChatMessage{},
		Settings: AppSettings{
			UseMetric:            true,
			NotificationsEnabled: true,
		},
		HasOnboarded: false,
	}
}
