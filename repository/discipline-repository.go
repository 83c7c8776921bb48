package repository

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Discipline struct {
	ID            string `gorm:"primaryKey"`
	SpoNumber     string `gorm:"null;column:spo_number"`
	Name          string `gorm:"not null"`
	RestSupported bool   `gorm:"not null;default:false"`
}

type DisciplineRepository struct {
	DB *gorm.DB
}

func NewDisciplineRepository(db *gorm.DB) *DisciplineRepository {
	return &DisciplineRepository{DB: db}
}

func (r *DisciplineRepository) GetAllDisciplines(ctx context.Context) ([]*Discipline, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetAllDisciplines"))
	defer timer.ObserveDuration()
	disciplines := make([]*Discipline, 0)
	result := r.DB.WithContext(ctx).Find(&disciplines)
	if result.Error != nil {
		return nil, result.Error
	}
	return disciplines, nil
}

func (r *DisciplineRepository) GetDisciplineById(ctx context.Context, disciplineId string) (*Discipline, error) {
	var discipline Discipline
	result := r.DB.WithContext(ctx).First(&discipline, "id = ?", disciplineId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &discipline, nil
}

func (r *DisciplineRepository) Save(ctx context.Context, discipline *Discipline) (*Discipline, error) {
	result := r.DB.WithContext(ctx).Save(discipline)
	if result.Error != nil {
		return nil, result.Error
	}
	return discipline, nil
}
