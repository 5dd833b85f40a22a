package service

import (
	"fmt"
	"strings"

	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

// HighSourceThreshold is the percent-of-daily-value above which a nutrient
// counts as a high source.
const HighSourceThreshold = 20

// LogScanResult folds an analysis result into the food log.
func LogScanResult(st *store.Store, data model.NutritionData, image string) (model.LogEntry, error) {
	return st.AddFoodLog(model.LogEntry{
		FoodName: data.Name,
		Calories: data.Calories,
		Protein:  data.Protein,
		Carbs:    data.Carbs,
		Fats:     data.Fats,
		Image:    image,
	})
}

// IsDuplicateFavorite reports whether a favorite with the same name already
// exists, compared case-insensitively. Duplicates are allowed; this only
// drives the warning shown before saving.
func IsDuplicateFavorite(favorites []model.FavoriteItem, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range favorites {
		if strings.ToLower(strings.TrimSpace(f.Name)) == name {
			return true
		}
	}
	return false
}

// SaveScanAsFavorite stores the scan as a quick-log template. duplicate is
// true when an identically named favorite already existed.
func SaveScanAsFavorite(st *store.Store, data model.NutritionData) (fav model.FavoriteItem, duplicate bool, err error) {
	duplicate = IsDuplicateFavorite(st.State().Favorites, data.Name)
	fav, err = st.AddFavorite(model.FavoriteItem{
		Name:     data.Name,
		Calories: data.Calories,
		Protein:  data.Protein,
		Carbs:    data.Carbs,
		Fats:     data.Fats,
	})
	return fav, duplicate, err
}

// LogFavorite quick-logs a saved favorite as a new food entry.
func LogFavorite(st *store.Store, id string) (model.LogEntry, error) {
	for _, f := range st.State().Favorites {
		if f.ID == id {
			return st.AddFoodLog(model.LogEntry{
				FoodName: f.Name,
				Calories: f.Calories,
				Protein:  f.Protein,
				Carbs:    f.Carbs,
				Fats:     f.Fats,
			})
		}
	}
	return model.LogEntry{}, fmt.Errorf("favorite %q not found", id)
}

// HighNutrients returns the vitamins and minerals at or above the
// high-source threshold, vitamins first, input order preserved.
func HighNutrients(data model.NutritionData) []model.NutrientInfo {
	high := make([]model.NutrientInfo, 0)
	for _, n := range data.Vitamins {
		if n.Percent >= HighSourceThreshold {
			high = append(high, n)
		}
	}
	for _, n := range data.Minerals {
		if n.Percent >= HighSourceThreshold {
			high = append(high, n)
		}
	}
	return high
}
