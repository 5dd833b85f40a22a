package model

// Enum values mirror the strings stored in persisted snapshots; changing
// them breaks old state files.

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "Weight Loss"
	GoalWeightGain  FitnessGoal = "Weight Gain"
	GoalMaintenance FitnessGoal = "Maintenance"
	GoalMuscleGain  FitnessGoal = "Muscle Gain"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtraActive      ActivityLevel = "Extra Active"
)

type UserProfile struct {
	Name             string        `json:"name"`
	Age              int           `json:"age"`
	Gender           Gender        `json:"gender"`
	WeightKg         float64       `json:"weight"`
	HeightCm         float64       `json:"height"`
	TargetWeightKg   float64       `json:"targetWeight"`
	Goal             FitnessGoal   `json:"goal"`
	ActivityLevel    ActivityLevel `json:"activityLevel"`
	DailyCalorieGoal int           `json:"dailyCalorieGoal"`
}

// LogEntry is a single meal record. Timestamp is epoch milliseconds so
// snapshots stay compatible with the original persisted shape.
type LogEntry struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	FoodName  string  `json:"foodName"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Image     string  `json:"image,omitempty"`
}

type FavoriteItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role      ChatRole `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
}

type AppSettings struct {
	UseMetric            bool `json:"useMetric"`
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

// AppState is the aggregate root: everything the app persists hangs off it
// and every mutation rewrites the whole snapshot.
type AppState struct {
	Profile      UserProfile    `json:"profile"`
	WaterIntake  int            `json:"waterIntake"`
	FoodLogs     []LogEntry     `json:"foodLogs"`
	Favorites    []FavoriteItem `json:"favorites"`
	ChatHistory  []ChatMessage  `json:"chatHistory"`
	Settings     AppSettings    `json:"settings"`
	HasOnboarded bool           `json:"hasOnboarded"`
}

type NutrientInfo struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type HealthAdvice struct {
	IsHealthy             bool     `json:"isHealthy"`
	Reasoning             string   `json:"reasoning"`
	WhoShouldAvoid        []string `json:"whoShouldAvoid"`
	BestTimeToEat         string   `json:"bestTimeToEat"`
	PortionRecommendation string   `json:"portionRecommendation"`
}

type Alternatives struct {
	Healthier []string `json:"healthier"`
	Similar   []string `json:"similar"`
}

// NutritionData is the structured result of an AI food-image analysis.
// It arrives from an untrusted model response; consumers must tolerate
// zero values and empty sequences.
type NutritionData struct {
	Name         string         `json:"name"`
	Calories     float64        `json:"calories"`
	Protein      float64        `json:"protein"`
	Carbs        float64        `json:"carbs"`
	Fats         float64        `json:"fats"`
	Fiber        float64        `json:"fiber"`
	Sugar        float64        `json:"sugar"`
	Vitamins     []NutrientInfo `json:"vitamins"`
	Minerals     []NutrientInfo `json:"minerals"`
	HealthAdvice HealthAdvice   `json:"healthAdvice"`
	Alternatives Alternatives   `json:"alternatives"`
}
