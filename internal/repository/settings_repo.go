package repository

import (
	"context"
	"errors"

	"courtwatch/internal/domain"

	"gorm.io/gorm"
)

// The automation policy is a single global row; settingsRowID pins it.
const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	ID int64 `gorm:"column:id;primaryKey"`

	WeatherEnabled         bool    `gorm:"column:weather_enabled"`
	MinTempEnabled         bool    `gorm:"column:min_temp_enabled"`
	MinTemp                float64 `gorm:"column:min_temp"`
	MaxTempEnabled         bool    `gorm:"column:max_temp_enabled"`
	MaxTemp                float64 `gorm:"column:max_temp"`
	RainProbabilityEnabled bool    `gorm:"column:rain_probability_enabled"`
	RainProbability        float64 `gorm:"column:rain_probability"`
	RecentRainEnabled      bool    `gorm:"column:recent_rain_enabled"`
	RecentRainHours        float64 `gorm:"column:recent_rain_hours"`
	MaxWindEnabled         bool    `gorm:"column:max_wind_enabled"`
	MaxWind                float64 `gorm:"column:max_wind"`

	AvailabilityEnabled bool `gorm:"column:availability_enabled"`
	MinAvailableCourts  int  `gorm:"column:min_available_courts"`

	AutoRebookEnabled           bool `gorm:"column:auto_rebook_enabled"`
	MaxAvailableCourtsForRebook int  `gorm:"column:max_available_courts_for_rebook"`
}

func (settingsModel) TableName() string { return "auto_cancel_settings" }

func toDomainSettings(m settingsModel) domain.AutoCancelSettings {
	return domain.AutoCancelSettings{
		WeatherEnabled:              m.WeatherEnabled,
		MinTempEnabled:              m.MinTempEnabled,
		MinTemp:                     m.MinTemp,
		MaxTempEnabled:              m.MaxTempEnabled,
		MaxTemp:                     m.MaxTemp,
		RainProbabilityEnabled:      m.RainProbabilityEnabled,
		RainProbability:             m.RainProbability,
		RecentRainEnabled:           m.RecentRainEnabled,
		RecentRainHours:             m.RecentRainHours,
		MaxWindEnabled:              m.MaxWindEnabled,
		MaxWind:                     m.MaxWind,
		AvailabilityEnabled:         m.AvailabilityEnabled,
		MinAvailableCourts:          m.MinAvailableCourts,
		AutoRebookEnabled:           m.AutoRebookEnabled,
		MaxAvailableCourtsForRebook: m.MaxAvailableCourtsForRebook,
	}
}

func toSettingsModel(s domain.AutoCancelSettings) settingsModel {
	return settingsModel{
		ID:                          settingsRowID,
		WeatherEnabled:              s.WeatherEnabled,
		MinTempEnabled:              s.MinTempEnabled,
		MinTemp:                     s.MinTemp,
		MaxTempEnabled:              s.MaxTempEnabled,
		MaxTemp:                     s.MaxTemp,
		RainProbabilityEnabled:      s.RainProbabilityEnabled,
		RainProbability:             s.RainProbability,
		RecentRainEnabled:           s.RecentRainEnabled,
		RecentRainHours:             s.RecentRainHours,
		MaxWindEnabled:              s.MaxWindEnabled,
		MaxWind:                     s.MaxWind,
		AvailabilityEnabled:         s.AvailabilityEnabled,
		MinAvailableCourts:          s.MinAvailableCourts,
		AutoRebookEnabled:           s.AutoRebookEnabled,
		MaxAvailableCourtsForRebook: s.MaxAvailableCourtsForRebook,
	}
}

// Get returns the stored policy, or the defaults when nothing has been
// saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (domain.AutoCancelSettings, error) {
	var m settingsModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultAutoCancelSettings(), nil
	}
	if err != nil {
		return domain.AutoCancelSettings{}, err
	}
	return toDomainSettings(m), nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.AutoCancelSettings) error {
	m := toSettingsModel(s)
	return r.db.WithContext(ctx).Save(&m).Error
}
