package classification

type ClassifiedEntry struct {
	Entry    *Entry
	AgeClass AgeClass
}

type Exclusion struct {
	EntryID string
	Reason  ExclusionReason
}

// FilterEligible classifies every entry and splits the input into entries
// admitted to team competition and excluded ones. Input order is kept.
func FilterEligible(entries []*Entry, competitionYear int, discipline *Discipline) ([]ClassifiedEntry, []Exclusion) {
	eligible := make([]ClassifiedEntry, 0, len(entries))
	excluded := make([]Exclusion, 0)
	for _, entry := range entries {
		ageClass, err := ClassifyEntry(entry, competitionYear, discipline)
		if err != nil {
			excluded = append(excluded, Exclusion{EntryID: entry.ID, Reason: Reason(err)})
			continue
		}
		eligible = append(eligible, ClassifiedEntry{Entry: entry, AgeClass: ageClass})
	}
	return eligible, excluded
}
