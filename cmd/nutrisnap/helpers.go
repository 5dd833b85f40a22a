package nutrisnap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Alok-2331/NutriSnap/internal/app"
	"github.com/Alok-2331/NutriSnap/internal/db"
	"github.com/Alok-2331/NutriSnap/internal/gateway/gemini"
	"github.com/Alok-2331/NutriSnap/internal/model"
	"github.com/Alok-2331/NutriSnap/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func withStore(run func(sqldb *sql.DB, st *store.Store) error) error {
	return withDB(func(sqldb *sql.DB) error {
		st, err := store.Open(sqldb)
		if err != nil {
			return err
		}
		return run(sqldb, st)
	})
}

func requireOnboarded(st *store.Store) error {
	if !st.State().HasOnboarded {
		return fmt.Errorf("no profile yet - run 'nutrisnap onboard' first")
	}
	return nil
}

func newGateway(ctx context.Context) (*gemini.Client, error) {
	return gemini.New(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("NUTRISNAP_MODEL"))
}

// renderMarkdown pretty-prints AI markdown with the persisted theme's
// glamour style. Rendering failures fall back to the raw text.
func renderMarkdown(sqldb *sql.DB, md string) string {
	out, err := glamour.Render(md, store.LoadTheme(sqldb))
	if err != nil {
		return md
	}
	return out
}

var genderTokens = map[string]model.Gender{
	"male":   model.GenderMale,
	"female": model.GenderFemale,
	"other":  model.GenderOther,
}

var goalTokens = map[string]model.FitnessGoal{
	"weight-loss": model.GoalWeightLoss,
	"weight-gain": model.GoalWeightGain,
	"maintenance": model.GoalMaintenance,
	"muscle-gain": model.GoalMuscleGain,
}

var activityTokens = map[string]model.ActivityLevel{
	"sedentary":         model.ActivitySedentary,
	"lightly-active":    model.ActivityLightlyActive,
	"moderately-active": model.ActivityModeratelyActive,
	"very-active":       model.ActivityVeryActive,
	"extra-active":      model.ActivityExtraActive,
}

func parseGender(value string) (model.Gender, error) {
	if g, ok := genderTokens[strings.ToLower(strings.TrimSpace(value))]; ok {
		return g, nil
	}
	return "", fmt.Errorf("invalid gender %q (use male, female, or other)", value)
}

func parseGoal(value string) (model.FitnessGoal, error) {
	if g, ok := goalTokens[strings.ToLower(strings.TrimSpace(value))]; ok {
		return g, nil
	}
	return "", fmt.Errorf("invalid goal %q (use weight-loss, weight-gain, maintenance, or muscle-gain)", value)
}

func parseActivityLevel(value string) (model.ActivityLevel, error) {
	if a, ok := activityTokens[strings.ToLower(strings.TrimSpace(value))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("invalid activity level %q (use sedentary, lightly-active, moderately-active, very-active, or extra-active)", value)
}
