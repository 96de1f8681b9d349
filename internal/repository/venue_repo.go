package repository

import (
	"context"

	"courtwatch/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

type venueModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name"`
	Address   string  `gorm:"column:address"`
	NumCourts int     `gorm:"column:num_courts"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
	Timezone  string  `gorm:"column:timezone"`
}

func (venueModel) TableName() string { return "venues" }

func toDomainVenue(m venueModel) *domain.Venue {
	return &domain.Venue{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		NumCourts: m.NumCourts,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Timezone:  m.Timezone,
	}
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	var m venueModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainVenue(m), nil
}

func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var rows []venueModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Venue, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVenue(m))
	}
	return out, nil
}

// Upsert is used by the seeder; venue rows are immutable reference data
// at runtime.
func (r *VenueRepository) Upsert(ctx context.Context, v *domain.Venue) error {
	m := venueModel{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		NumCourts: v.NumCourts,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Timezone:  v.Timezone,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&m).Error
}
