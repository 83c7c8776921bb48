package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Team struct {
	ID              string         `gorm:"primaryKey"`
	Name            string         `gorm:"not null"`
	ClubID          string         `gorm:"not null;index"`
	DisciplineID    string         `gorm:"not null;index"`
	CoarseKey       string         `gorm:"null"`
	EntryIDs        pq.StringArray `gorm:"not null;type:text[]"`
	ShooterIDs      pq.StringArray `gorm:"not null;type:text[]"`
	LMStartEntryIDs pq.StringArray `gorm:"not null;type:text[];default:'{}';column:lm_start_entry_ids"`
	AgeClasses      pq.StringArray `gorm:"not null;type:text[];default:'{}'"`
	Year            int            `gorm:"not null;index:idx_teams_year_generated"`
	AutoGenerated   bool           `gorm:"not null;default:false;index:idx_teams_year_generated"`
	GeneratedAt     *time.Time     `gorm:"null"`
}

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) GetTeamById(ctx context.Context, teamId string) (*Team, error) {
	var team Team
	result := r.DB.WithContext(ctx).First(&team, "id = ?", teamId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &team, nil
}

func (r *TeamRepository) GetTeamsForYear(ctx context.Context, year int) ([]*Team, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetTeamsForYear"))
	defer timer.ObserveDuration()
	teams := make([]*Team, 0)
	result := r.DB.WithContext(ctx).
		Where("year = ?", year).
		Order("club_id ASC, discipline_id ASC, name ASC").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

// DeleteGeneratedTeamsForYear removes only teams created by the generator for
// the given year. Deleting zero rows is not an error.
func (r *TeamRepository) DeleteGeneratedTeamsForYear(ctx context.Context, year int) (int64, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("DeleteGeneratedTeamsForYear"))
	defer timer.ObserveDuration()
	result := r.DB.WithContext(ctx).
		Where("auto_generated = ? AND year = ?", true, year).
		Delete(&Team{})
	return result.RowsAffected, result.Error
}

func (r *TeamRepository) Create(ctx context.Context, team *Team) error {
	return r.DB.WithContext(ctx).Create(team).Error
}
