package service

import (
	"fmt"
	"strings"

	"kmteams/classification"
	"kmteams/parser"
	"kmteams/utils"
)

type TeamDiagnostic struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	EntryIDs        []string `json:"entry_ids"`
	Members         []string `json:"members"`
	LMStartEntryIDs []string `json:"lm_start_entry_ids"`
	AgeClasses      []string `json:"age_classes"`
	Homogeneous     bool     `json:"homogeneous"`
	Persisted       bool     `json:"persisted"`
}

type LeftoverDiagnostic struct {
	AgeClass string   `json:"age_class"`
	EntryIDs []string `json:"entry_ids"`
}

type GroupDiagnostic struct {
	ClubID         string                                 `json:"club_id"`
	DisciplineID   string                                 `json:"discipline_id"`
	DisciplineName string                                 `json:"discipline_name,omitempty"`
	EntryCount     int                                    `json:"entry_count"`
	ExcludedCount  int                                    `json:"excluded_count"`
	Exclusions     map[classification.ExclusionReason]int `json:"exclusions"`
	LeftoverCount  int                                    `json:"leftover_count"`
	Teams          []*TeamDiagnostic                      `json:"teams"`
	Leftovers      []LeftoverDiagnostic                   `json:"leftovers"`
}

// GenerationReport is built locally by one run and returned to the caller.
type GenerationReport struct {
	Year           int                `json:"year"`
	GeneratedCount int                `json:"generated"`
	TotalEntries   int                `json:"total_entries"`
	ExcludedCount  int                `json:"excluded"`
	LeftoverCount  int                `json:"leftovers"`
	DeletedCount   int64              `json:"deleted"`
	LegacyEntries  bool               `json:"legacy_entries"`
	Groups         []*GroupDiagnostic `json:"per_group_diagnostics"`
	Warnings       []string           `json:"warnings"`
	Message        string             `json:"message"`
}

func newGenerationReport(year int) *GenerationReport {
	return &GenerationReport{
		Year:     year,
		Groups:   make([]*GroupDiagnostic, 0),
		Warnings: make([]string, 0),
	}
}

func (r *GenerationReport) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *GenerationReport) addGroup(group *GroupDiagnostic) {
	r.Groups = append(r.Groups, group)
	r.ExcludedCount += group.ExcludedCount
	r.LeftoverCount += group.LeftoverCount
}

func (r *GenerationReport) summarize(teamsFormed int) {
	switch {
	case r.TotalEntries == 0:
		r.Message = fmt.Sprintf("No entries found for competition year %d", r.Year)
	case teamsFormed == 0:
		r.Message = fmt.Sprintf("%d entries found for %d, but no complete team of %d could be formed (%d excluded, %d left over)",
			r.TotalEntries, r.Year, classification.TeamSize, r.ExcludedCount, r.LeftoverCount)
	default:
		r.Message = fmt.Sprintf("Generated %d teams from %d entries for %d", r.GeneratedCount, r.TotalEntries, r.Year)
		if failed := teamsFormed - r.GeneratedCount; failed > 0 {
			r.Message += fmt.Sprintf(", %d teams could not be saved", failed)
		}
	}
}

func newGroupDiagnostic(group *classification.EntryGroup, discipline *classification.Discipline, result *classification.PartitionResult) *GroupDiagnostic {
	diagnostic := &GroupDiagnostic{
		ClubID:        group.Key.ClubID,
		DisciplineID:  group.Key.DisciplineID,
		EntryCount:    len(group.Entries),
		ExcludedCount: len(result.Excluded),
		Exclusions:    make(map[classification.ExclusionReason]int),
		LeftoverCount: result.LeftoverCount(),
		Teams:         make([]*TeamDiagnostic, 0, len(result.Teams)),
		Leftovers:     make([]LeftoverDiagnostic, 0, len(result.Leftovers)),
	}
	if discipline != nil {
		diagnostic.DisciplineName = discipline.Name
	}
	for _, exclusion := range result.Excluded {
		diagnostic.Exclusions[exclusion.Reason]++
	}
	for _, leftover := range result.Leftovers {
		diagnostic.Leftovers = append(diagnostic.Leftovers, LeftoverDiagnostic{AgeClass: leftover.CoarseKey, EntryIDs: leftover.EntryIDs})
	}
	return diagnostic
}

const maxFaultIDs = 5

// faultWarnings condenses data faults into one warning per fault kind.
func faultWarnings(faults []parser.DataFault) []string {
	byKind := make(map[string][]string)
	for _, fault := range faults {
		byKind[string(fault.Kind)] = append(byKind[string(fault.Kind)], fault.RecordID)
	}
	kinds := utils.SortedKeys(byKind)
	warnings := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		ids := byKind[kind]
		shown := ids
		if len(shown) > maxFaultIDs {
			shown = shown[:maxFaultIDs]
		}
		warning := fmt.Sprintf("%d records with %s: %s", len(ids), kind, strings.Join(shown, ", "))
		if len(ids) > maxFaultIDs {
			warning += ", ..."
		}
		warnings = append(warnings, warning)
	}
	return warnings
}
