package repository

import (
	"encoding/json"
	"time"

	"planner/internal/model"
	"planner/internal/store"
)

// SettingsRepository manages the settings and user singletons plus the
// stored theme name.
type SettingsRepository struct {
	store store.Store
}

func NewSettingsRepository(s store.Store) *SettingsRepository {
	return &SettingsRepository{store: s}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (r *SettingsRepository) Get() (model.Settings, error) {
	settings, err := loadObject[model.Settings](r.store, store.KeySettings)
	if err != nil {
		return model.Settings{}, err
	}
	if settings == nil {
		return model.DefaultSettings(), nil
	}
	return *settings, nil
}

func (r *SettingsRepository) Save(settings model.Settings) error {
	return save(r.store, store.KeySettings, settings)
}

// GetUser returns the local profile, or nil before onboarding.
func (r *SettingsRepository) GetUser() (*model.User, error) {
	return loadObject[model.User](r.store, store.KeyUser)
}

func (r *SettingsRepository) SaveUser(user model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	return save(r.store, store.KeyUser, user)
}

// Theme returns the stored theme name, defaulting to "light".
func (r *SettingsRepository) Theme() (string, error) {
	raw, err := r.store.Get(store.KeyTheme)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "light", nil
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "light", nil
	}
	return theme, nil
}

func (r *SettingsRepository) SetTheme(theme string) error {
	return save(r.store, store.KeyTheme, theme)
}
