package parser

import (
	"fmt"
	"math"
	"strings"

	"kmteams/classification"
	"kmteams/repository"
)

const minBirthYear = 1900

type FaultKind string

const (
	FaultInvalidGender    FaultKind = "invalid_gender"
	FaultInvalidBirthYear FaultKind = "invalid_birth_year"
	FaultMissingCode      FaultKind = "missing_discipline_code"
	FaultUnknownShooter   FaultKind = "unknown_shooter"
	FaultInvalidResult    FaultKind = "invalid_prior_result"
)

// DataFault describes a record that could only be partially converted.
// Faults never abort a run; the affected field is left empty.
type DataFault struct {
	Kind     FaultKind
	RecordID string
	Detail   string
}

func (f DataFault) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.RecordID, f.Detail)
}

var genderSpellings = map[string]classification.Gender{
	"male":      classification.Male,
	"m":         classification.Male,
	"männlich":  classification.Male,
	"maennlich": classification.Male,
	"herr":      classification.Male,
	"female":    classification.Female,
	"f":         classification.Female,
	"w":         classification.Female,
	"weiblich":  classification.Female,
	"dame":      classification.Female,
}

func ParseGender(raw *string) (*classification.Gender, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	gender, ok := genderSpellings[strings.ToLower(strings.TrimSpace(*raw))]
	if !ok {
		return nil, false
	}
	return &gender, true
}

// ParseBirthYear rejects years before 1900 and years after the competition
// year.
func ParseBirthYear(raw *int, competitionYear int) (*int, bool) {
	if raw == nil {
		return nil, true
	}
	if *raw < minBirthYear || *raw > competitionYear {
		return nil, false
	}
	year := *raw
	return &year, true
}

func ParseShooter(row *repository.Shooter, competitionYear int) (*classification.Shooter, []DataFault) {
	faults := make([]DataFault, 0)
	shooter := &classification.Shooter{
		ID:          row.ID,
		DisplayName: strings.TrimSpace(row.Name),
		ClubID:      strings.TrimSpace(row.ClubID),
	}
	if row.KMClubID != nil {
		shooter.KMClubID = strings.TrimSpace(*row.KMClubID)
	}
	gender, ok := ParseGender(row.Gender)
	if !ok {
		faults = append(faults, DataFault{Kind: FaultInvalidGender, RecordID: row.ID, Detail: fmt.Sprintf("unrecognised gender %q", *row.Gender)})
	}
	shooter.Gender = gender
	birthYear, ok := ParseBirthYear(row.BirthYear, competitionYear)
	if !ok {
		faults = append(faults, DataFault{Kind: FaultInvalidBirthYear, RecordID: row.ID, Detail: fmt.Sprintf("birth year %d out of range", *row.BirthYear)})
	}
	shooter.BirthYear = birthYear
	return shooter, faults
}

func ParseDiscipline(row *repository.Discipline) (*classification.Discipline, []DataFault) {
	faults := make([]DataFault, 0)
	code := strings.TrimSpace(row.SpoNumber)
	if code == "" {
		faults = append(faults, DataFault{Kind: FaultMissingCode, RecordID: row.ID, Detail: "discipline has no SpoNummer"})
	}
	return &classification.Discipline{
		ID:            row.ID,
		Code:          code,
		Name:          row.Name,
		RestSupported: row.RestSupported,
	}, faults
}

// ParseEntry resolves the shooter reference through shooters. An unresolved
// reference leaves Shooter nil so that classification excludes the entry.
func ParseEntry(row *repository.Entry, shooters map[string]*classification.Shooter) (*classification.Entry, []DataFault) {
	faults := make([]DataFault, 0)
	entry := &classification.Entry{
		ID:           row.ID,
		ShooterID:    row.ShooterID,
		DisciplineID: strings.TrimSpace(row.DisciplineID),
		Shooter:      shooters[row.ShooterID],
	}
	if row.ClubID != nil {
		entry.ClubID = strings.TrimSpace(*row.ClubID)
	}
	if row.LMStart != nil {
		entry.LMStart = *row.LMStart
	}
	if row.PriorResult != nil {
		switch {
		case math.IsNaN(*row.PriorResult) || math.IsInf(*row.PriorResult, 0):
			faults = append(faults, DataFault{Kind: FaultInvalidResult, RecordID: row.ID, Detail: fmt.Sprintf("non-finite prior result %v", *row.PriorResult)})
		case *row.PriorResult < 0:
			faults = append(faults, DataFault{Kind: FaultInvalidResult, RecordID: row.ID, Detail: fmt.Sprintf("negative prior result %.1f", *row.PriorResult)})
		default:
			result := *row.PriorResult
			entry.PriorResult = &result
		}
	}
	if entry.Shooter == nil {
		faults = append(faults, DataFault{Kind: FaultUnknownShooter, RecordID: row.ID, Detail: fmt.Sprintf("shooter %s not found", row.ShooterID)})
	}
	return entry, faults
}

func ParseShooters(rows []*repository.Shooter, competitionYear int) (map[string]*classification.Shooter, []DataFault) {
	shooters := make(map[string]*classification.Shooter, len(rows))
	faults := make([]DataFault, 0)
	for _, row := range rows {
		shooter, rowFaults := ParseShooter(row, competitionYear)
		shooters[shooter.ID] = shooter
		faults = append(faults, rowFaults...)
	}
	return shooters, faults
}

func ParseDisciplines(rows []*repository.Discipline) (map[string]*classification.Discipline, []DataFault) {
	disciplines := make(map[string]*classification.Discipline, len(rows))
	faults := make([]DataFault, 0)
	for _, row := range rows {
		discipline, rowFaults := ParseDiscipline(row)
		disciplines[discipline.ID] = discipline
		faults = append(faults, rowFaults...)
	}
	return disciplines, faults
}

func ParseEntries(rows []*repository.Entry, shooters map[string]*classification.Shooter) ([]*classification.Entry, []DataFault) {
	entries := make([]*classification.Entry, 0, len(rows))
	faults := make([]DataFault, 0)
	for _, row := range rows {
		entry, rowFaults := ParseEntry(row, shooters)
		entries = append(entries, entry)
		faults = append(faults, rowFaults...)
	}
	return entries, faults
}
