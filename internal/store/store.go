// Package store owns the single persisted AppState aggregate. Every
// mutation runs under one mutex and synchronously rewrites the whole JSON
// snapshot, so there is exactly one writer and the on-disk state always
// reflects the last completed operation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Alok-2331/NutriSnap/internal/db"
	"github.com/Alok-2331/NutriSnap/internal/model"
)

// StateKey is the kv key holding the serialized AppState snapshot.
const StateKey = "app_state"

type Store struct {
	mu    sync.Mutex
	sqldb *sql.DB
	state model.AppState
}

// Open loads the persisted snapshot into a new Store. A missing key or a
// snapshot that fails to parse yields the default state; corruption is
// never fatal.
func Open(sqldb *sql.DB) (*Store, error) {
	s := &Store{sqldb: sqldb, state: model.DefaultState()}

	raw, ok, err := db.GetValue(sqldb, StateKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var loaded model.AppState
		if err := json.Unmarshal([]byte(raw), &loaded); err == nil {
			normalize(&loaded)
			s.state = loaded
		}
	}
	return s, nil
}

// normalize repairs a decoded snapshot so downstream code never sees nil
// sequences or a negative water counter.
func normalize(st *model.AppState) {
	if st.FoodLogs == nil {
		st.FoodLogs = []model.LogEntry{}
	}
	if st.Favorites == nil {
		st.Favorites = []model.FavoriteItem{}
	}
	if st.ChatHistory == nil {
		st.ChatHistory = []model.ChatMessage{}
	}
	if st.WaterIntake < 0 {
		st.WaterIntake = 0
	}
}

// State returns a deep copy of the current aggregate.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

func copyState(st model.AppState) model.AppState {
	out := st
	out.FoodLogs = append([]model.LogEntry(nil), st.FoodLogs...)
	out.Favorites = append([]model.FavoriteItem(nil), st.Favorites...)
	out.ChatHistory = append([]model.ChatMessage(nil), st.ChatHistory...)
	return out
}

// persist must be called with the mutex held.
func (s *Store) persist() error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}
	return db.SetValue(s.sqldb, StateKey, string(raw))
}

func newID() string {
	return uuid.NewString()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// AddFoodLog assigns a fresh id and timestamp and prepends the entry to the
// log (newest first). The id and timestamp on the input are ignored.
func (s *Store) AddFoodLog(entry model.LogEntry) (model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = newID()
	entry.Timestamp = nowMillis()
	s.state.FoodLogs = append([]model.LogEntry{entry}, s.state.FoodLogs...)
	return entry, s.persist()
}

// AddFavorite assigns a fresh id and prepends the item.
func (s *Store) AddFavorite(item model.FavoriteItem) (model.FavoriteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = newID()
	s.state.Favorites = append([]model.FavoriteItem{item}, s.state.Favorites...)
	return item, s.persist()
}

// RemoveFavorite deletes the favorite with the given id. Removing an id that
// does not exist is a no-op.
func (s *Store) RemoveFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Favorites[:0]
	for _, f := range s.state.Favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.state.Favorites = kept
	return s.persist()
}

func (s *Store) UpdateProfile(profile model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Profile = profile
	return s.persist()
}

func (s *Store) UpdateSettings(settings model.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Settings = settings
	return s.persist()
}

func (s *Store) UpdateChatHistory(history []model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if history == nil {
		history = []model.ChatMessage{}
	}
	s.state.ChatHistory = history
	return s.persist()
}

func (s *Store) ClearChatHistory() error {
	return s.UpdateChatHistory(nil)
}

// UpdateWaterIntake applies a signed delta in milliliters, clamping at zero.
func (s *Store) UpdateWaterIntake(deltaML int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.WaterIntake += deltaML
	if s.state.WaterIntake < 0 {
		s.state.WaterIntake = 0
	}
	return s.state.WaterIntake, s.persist()
}

// CompleteOnboarding stores the onboarded profile and flips the flag.
func (s *Store) CompleteOnboarding(profile model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Profile = profile
	s.state.HasOnboarded = true
	return s.persist()
}

// ResetAll drops the persisted snapshot and returns the aggregate to its
// default state. The theme key is left alone.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := db.DeleteValue(s.sqldb, StateKey); err != nil {
		return err
	}
	s.state = model.DefaultState()
	return nil
}
