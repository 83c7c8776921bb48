package repository

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Entry is a shooter's registration ("Meldung") for one discipline.
type Entry struct {
	ID           string   `gorm:"primaryKey"`
	ShooterID    string   `gorm:"not null;index"`
	DisciplineID string   `gorm:"null;index"`
	ClubID       *string  `gorm:"null"`
	Year         *int     `gorm:"null;index"`
	PriorResult  *float64 `gorm:"null"`
	LMStart      *bool    `gorm:"null;column:lm_start"`
}

type EntryRepository struct {
	DB *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{DB: db}
}

func (r *EntryRepository) GetEntriesForYear(ctx context.Context, year int) ([]*Entry, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetEntriesForYear"))
	defer timer.ObserveDuration()
	entries := make([]*Entry, 0)
	result := r.DB.WithContext(ctx).Where("year = ?", year).Order("id ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// GetEntriesWithoutYear returns legacy entries that were stored before the
// year column existed.
func (r *EntryRepository) GetEntriesWithoutYear(ctx context.Context) ([]*Entry, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetEntriesWithoutYear"))
	defer timer.ObserveDuration()
	entries := make([]*Entry, 0)
	result := r.DB.WithContext(ctx).Where("year IS NULL").Order("id ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *EntryRepository) Save(ctx context.Context, entry *Entry) (*Entry, error) {
	result := r.DB.WithContext(ctx).Save(entry)
	if result.Error != nil {
		return nil, result.Error
	}
	return entry, nil
}
