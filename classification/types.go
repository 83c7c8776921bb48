package classification

import (
	"errors"
	"time"

	"kmteams/utils"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Unknown is used for club and discipline ids that cannot be resolved.
const Unknown = "unknown"

const TeamSize = 3

var ErrIneligible = errors.New("ineligible for team competition")

type Shooter struct {
	ID          string
	DisplayName string
	BirthYear   *int
	Gender      *Gender
	ClubID      string
	// KMClubID overrides ClubID for team formation when set.
	KMClubID string
}

type Discipline struct {
	ID            string
	Code          string
	Name          string
	RestSupported bool
}

type Entry struct {
	ID           string
	ShooterID    string
	DisciplineID string
	ClubID       string
	PriorResult  *float64
	LMStart      bool
	Shooter      *Shooter
}

func (e *Entry) displayName() string {
	if e.Shooter == nil {
		return ""
	}
	return e.Shooter.DisplayName
}

func (e *Entry) priorResult() float64 {
	if e.PriorResult == nil {
		return 0
	}
	return *e.PriorResult
}

type AgeClass struct {
	CoarseKey string
	FineLabel string
}

type Team struct {
	ClubID       string
	DisciplineID string
	CoarseKey    string
	Name         string
	Sequence     int
	Members      []*Entry
	FineLabels   []string
	Year         int
	GeneratedAt  time.Time
}

func (t *Team) Homogeneous() bool {
	return len(t.FineLabels) == 1
}

func (t *Team) EntryIDs() []string {
	return utils.Map(t.Members, func(member *Entry) string { return member.ID })
}

// LMStartEntryIDs lists members that also start at the state championship.
func (t *Team) LMStartEntryIDs() []string {
	starters := utils.Filter(t.Members, func(member *Entry) bool { return member.LMStart })
	return utils.Map(starters, func(member *Entry) string { return member.ID })
}

func (t *Team) ShooterIDs() []string {
	return utils.Map(t.Members, func(member *Entry) string { return member.ShooterID })
}
