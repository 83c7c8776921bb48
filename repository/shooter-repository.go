package repository

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Shooter struct {
	ID        string  `gorm:"primaryKey"`
	Name      string  `gorm:"not null"`
	BirthYear *int    `gorm:"null"`
	Gender    *string `gorm:"null"`
	ClubID    string  `gorm:"null;index"`
	KMClubID  *string `gorm:"null;column:km_club_id"`
}

type ShooterRepository struct {
	DB *gorm.DB
}

func NewShooterRepository(db *gorm.DB) *ShooterRepository {
	return &ShooterRepository{DB: db}
}

func (r *ShooterRepository) GetAllShooters(ctx context.Context) ([]*Shooter, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAllShooters"))
	defer timer.ObserveDuration()
	shooters := make([]*Shooter, 0)
	result := r.DB.WithContext(ctx).Find(&shooters)
	if result.Error != nil {
		return nil, result.Error
	}
	return shooters, nil
}

func (r *ShooterRepository) Save(ctx context.Context, shooter *Shooter) (*Shooter, error) {
	result := r.DB.WithContext(ctx).Save(shooter)
	if result.Error != nil {
		return nil, result.Error
	}
	return shooter, nil
}
