package service_test

import (
	"testing"
	"time"

	"github.com/Alok-2331/NutriSnap/internal/gateway"
	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/service"
)

func TestLogScanResultCreatesEntry(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	data := model.NutritionData{Name: "Paneer Tikka", Calories: 280, Protein: 22, Carbs: 8, Fats: 18}
	entry, err := service.LogScanResult(st, data, "base64jpeg")
	if err != nil {
		t.Fatalf("log scan result: %v", err)
	}
	if entry.FoodName != "Paneer Tikka" || entry.Calories != 280 || entry.Image != "base64jpeg" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.ID == "" || entry.Timestamp == 0 {
		t.Fatalf("expected assigned id and timestamp: %+v", entry)
	}
}

func TestNegativeCaloriesFromAnalysisNeverReachTheSummary(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	data, err := gateway.DecodeNutritionData(`{"name":"Ghost Meal","calories":-3000,"protein":-5}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := service.LogScanResult(st, data, ""); err != nil {
		t.Fatalf("log scan result: %v", err)
	}

	s := service.TodaySummaryFor(st.State(), time.Now())
	if s.IntakeCalories != 0 || s.ProteinG != 0 {
		t.Fatalf("expected clamped intake, got %+v", s)
	}
	if s.RemainingCalories != s.GoalCalories {
		t.Fatalf("expected full remaining budget, got %+v", s)
	}
}

func TestIsDuplicateFavoriteCaseInsensitive(t *testing.T) {
	t.Parallel()

	favorites := []model.FavoriteItem{{Name: "Greek Yogurt"}}
	if !service.IsDuplicateFavorite(favorites, "greek yogurt") {
		t.Fatalf("expected case-insensitive match")
	}
	if !service.IsDuplicateFavorite(favorites, "  GREEK YOGURT  ") {
		t.Fatalf("expected match despite surrounding whitespace")
	}
	if service.IsDuplicateFavorite(favorites, "Greek Salad") {
		t.Fatalf("unexpected match for different name")
	}
}

func TestSaveScanAsFavoriteFlagsDuplicateButStillSaves(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	data := model.NutritionData{Name: "Banana", Calories: 105}
	if _, duplicate, err := service.SaveScanAsFavorite(st, data); err != nil || duplicate {
		t.Fatalf("first save: duplicate=%v err=%v", duplicate, err)
	}
	_, duplicate, err := service.SaveScanAsFavorite(st, model.NutritionData{Name: "BANANA", Calories: 110})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if !duplicate {
		t.Fatalf("expected duplicate warning on second save")
	}
	if got := len(st.State().Favorites); got != 2 {
		t.Fatalf("duplicates are allowed, expected 2 favorites, got %d", got)
	}
}

func TestLogFavorite(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	fav, _, err := service.SaveScanAsFavorite(st, model.NutritionData{Name: "Oats", Calories: 150, Protein: 5})
	if err != nil {
		t.Fatalf("save favorite: %v", err)
	}

	entry, err := service.LogFavorite(st, fav.ID)
	if err != nil {
		t.Fatalf("log favorite: %v", err)
	}
	if entry.FoodName != "Oats" || entry.Calories != 150 || entry.Protein != 5 {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if _, err := service.LogFavorite(st, "missing"); err == nil {
		t.Fatalf("expected error for unknown favorite id")
	}
}

func TestHighNutrientsThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	data := model.NutritionData{
		Vitamins: []model.NutrientInfo{
			{Name: "Vitamin C", Percent: 45},
			{Name: "Vitamin D", Percent: 5},
			{Name: "Vitamin B12", Percent: 20},
		},
		Minerals: []model.NutrientInfo{
			{Name: "Iron", Percent: 19.9},
			{Name: "Potassium", Percent: 25},
		},
	}
	high := service.HighNutrients(data)
	if len(high) != 3 {
		t.Fatalf("expected 3 high nutrients, got %+v", high)
	}
	if high[0].Name != "Vitamin C" || high[1].Name != "Vitamin B12" || high[2].Name != "Potassium" {
		t.Fatalf("unexpected ordering: %+v", high)
	}
}
