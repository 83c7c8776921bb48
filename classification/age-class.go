package classification

import (
	"errors"
	"fmt"
)

var (
	ErrMissingShooter     = fmt.Errorf("%w: shooter not found", ErrIneligible)
	ErrMissingBirthYear   = fmt.Errorf("%w: birth year missing", ErrIneligible)
	ErrMissingGender      = fmt.Errorf("%w: gender missing", ErrIneligible)
	ErrUnknownDiscipline  = fmt.Errorf("%w: discipline not found", ErrIneligible)
	ErrIneligibleAgeClass = fmt.Errorf("%w: age class not admitted to team competition", ErrIneligible)
)

type ExclusionReason string

const (
	ReasonMissingShooter     ExclusionReason = "missing_shooter"
	ReasonMissingBirthYear   ExclusionReason = "missing_birth_year"
	ReasonMissingGender      ExclusionReason = "missing_gender"
	ReasonUnknownDiscipline  ExclusionReason = "unknown_discipline"
	ReasonIneligibleAgeClass ExclusionReason = "ineligible_age_class"
)

// Reason maps an error returned by Classify or ClassifyEntry to the reason
// reported in group diagnostics.
func Reason(err error) ExclusionReason {
	switch {
	case errors.Is(err, ErrMissingShooter):
		return ReasonMissingShooter
	case errors.Is(err, ErrMissingBirthYear):
		return ReasonMissingBirthYear
	case errors.Is(err, ErrMissingGender):
		return ReasonMissingGender
	case errors.Is(err, ErrUnknownDiscipline):
		return ReasonUnknownDiscipline
	default:
		return ReasonIneligibleAgeClass
	}
}

// Classify returns the age class of a shooter for the given competition year
// and discipline. Shooters that cannot be classified or whose age band is not
// admitted to team competition yield an error wrapping ErrIneligible.
func Classify(birthYear *int, gender *Gender, competitionYear int, discipline *Discipline) (AgeClass, error) {
	if birthYear == nil {
		return AgeClass{}, ErrMissingBirthYear
	}
	if gender == nil || (*gender != Male && *gender != Female) {
		return AgeClass{}, ErrMissingGender
	}
	if discipline == nil {
		return AgeClass{}, ErrUnknownDiscipline
	}
	age := competitionYear - *birthYear
	band := bandsFor(discipline).lookup(age)
	if !band.eligible() {
		return AgeClass{}, fmt.Errorf("%w (age %d, discipline %s)", ErrIneligibleAgeClass, age, discipline.Code)
	}
	return AgeClass{CoarseKey: band.coarseKey, FineLabel: band.fineLabel(*gender)}, nil
}

func ClassifyEntry(entry *Entry, competitionYear int, discipline *Discipline) (AgeClass, error) {
	if entry.Shooter == nil {
		return AgeClass{}, ErrMissingShooter
	}
	return Classify(entry.Shooter.BirthYear, entry.Shooter.Gender, competitionYear, discipline)
}
