package service

import (
	"context"

	"kmteams/repository"

	"gorm.io/gorm"
)

type TeamService struct {
	teamRepository *repository.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		teamRepository: repository.NewTeamRepository(db),
	}
}

func (e *TeamService) GetTeamsForYear(ctx context.Context, year int) ([]*repository.Team, error) {
	return e.teamRepository.GetTeamsForYear(ctx, year)
}

func (e *TeamService) GetTeamById(ctx context.Context, teamId string) (*repository.Team, error) {
	return e.teamRepository.GetTeamById(ctx, teamId)
}
