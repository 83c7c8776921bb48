package service

import (
	"context"
	"errors"
	"fmt"

	"kmteams/classification"
	"kmteams/parser"
	"kmteams/repository"

	"gorm.io/gorm"
)

var ErrInvalidPreviewInput = errors.New("invalid age class query")

type disciplineLookup interface {
	GetDisciplineById(ctx context.Context, disciplineId string) (*repository.Discipline, error)
}

type AgeClassService struct {
	disciplineRepository disciplineLookup
}

func NewAgeClassService(db *gorm.DB) *AgeClassService {
	return &AgeClassService{
		disciplineRepository: repository.NewDisciplineRepository(db),
	}
}

type AgeClassPreview struct {
	Discipline *classification.Discipline
	AgeClass   classification.AgeClass
	Age        int
}

// PreviewAgeClass classifies a single shooter the same way a generation run
// would. Malformed input yields ErrInvalidPreviewInput, ineligible shooters
// an error wrapping classification.ErrIneligible.
func (s *AgeClassService) PreviewAgeClass(ctx context.Context, birthYear int, gender string, year int, disciplineId string) (*AgeClassPreview, error) {
	parsedGender, ok := parser.ParseGender(&gender)
	if !ok || parsedGender == nil {
		return nil, fmt.Errorf("%w: unrecognised gender %q", ErrInvalidPreviewInput, gender)
	}
	parsedBirthYear, ok := parser.ParseBirthYear(&birthYear, year)
	if !ok {
		return nil, fmt.Errorf("%w: birth year %d out of range for %d", ErrInvalidPreviewInput, birthYear, year)
	}
	row, err := s.disciplineRepository.GetDisciplineById(ctx, disciplineId)
	if err != nil {
		return nil, err
	}
	discipline, _ := parser.ParseDiscipline(row)
	ageClass, err := classification.Classify(parsedBirthYear, parsedGender, year, discipline)
	if err != nil {
		return nil, err
	}
	return &AgeClassPreview{
		Discipline: discipline,
		AgeClass:   ageClass,
		Age:        year - birthYear,
	}, nil
}
