package classification

import (
	"fmt"
	"sort"
	"time"

	"kmteams/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Leftover struct {
	CoarseKey string
	EntryIDs  []string
}

type PartitionResult struct {
	Teams     []*Team
	Leftovers []Leftover
	Excluded  []Exclusion
}

func (r *PartitionResult) LeftoverCount() int {
	count := 0
	for _, leftover := range r.Leftovers {
		count += len(leftover.EntryIDs)
	}
	return count
}

func TeamName(coarseKey string, sequence int) string {
	return fmt.Sprintf("%s Team %d", coarseKey, sequence)
}

// Partition forms teams of TeamSize out of one (club, discipline) group.
// Entries are split by coarse age class, ranked by prior result and cut into
// consecutive chunks; a trailing chunk smaller than TeamSize is reported as a
// leftover and never becomes a team.
func Partition(group *EntryGroup, competitionYear int, discipline *Discipline, generatedAt time.Time) *PartitionResult {
	eligible, excluded := FilterEligible(group.Entries, competitionYear, discipline)
	result := &PartitionResult{
		Teams:     make([]*Team, 0),
		Leftovers: make([]Leftover, 0),
		Excluded:  excluded,
	}

	byCoarseKey := make(map[string][]ClassifiedEntry)
	for _, classified := range eligible {
		key := classified.AgeClass.CoarseKey
		byCoarseKey[key] = append(byCoarseKey[key], classified)
	}

	collator := collate.New(language.German)
	for _, coarseKey := range utils.SortedKeys(byCoarseKey) {
		members := byCoarseKey[coarseKey]
		sortByRanking(members, collator)
		for i, chunk := range utils.Chunk(members, TeamSize) {
			if len(chunk) < TeamSize {
				result.Leftovers = append(result.Leftovers, Leftover{
					CoarseKey: coarseKey,
					EntryIDs:  entryIDs(chunk),
				})
				continue
			}
			result.Teams = append(result.Teams, newTeam(group.Key, coarseKey, i+1, chunk, competitionYear, generatedAt))
		}
	}
	return result
}

// sortByRanking orders by prior result descending, then by display name in
// German collation. Entry ids break remaining ties so reruns are stable.
func sortByRanking(members []ClassifiedEntry, collator *collate.Collator) {
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i].Entry, members[j].Entry
		if a.priorResult() != b.priorResult() {
			return a.priorResult() > b.priorResult()
		}
		if cmp := collator.CompareString(a.displayName(), b.displayName()); cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

func newTeam(key GroupKey, coarseKey string, sequence int, chunk []ClassifiedEntry, competitionYear int, generatedAt time.Time) *Team {
	members := utils.Map(chunk, func(classified ClassifiedEntry) *Entry { return classified.Entry })
	labels := utils.Map(chunk, func(classified ClassifiedEntry) string { return classified.AgeClass.FineLabel })
	return &Team{
		ClubID:       key.ClubID,
		DisciplineID: key.DisciplineID,
		CoarseKey:    coarseKey,
		Name:         TeamName(coarseKey, sequence),
		Sequence:     sequence,
		Members:      members,
		FineLabels:   distinctSorted(labels),
		Year:         competitionYear,
		GeneratedAt:  generatedAt,
	}
}

func entryIDs(members []ClassifiedEntry) []string {
	return utils.Map(members, func(member ClassifiedEntry) string { return member.Entry.ID })
}

func distinctSorted(labels []string) []string {
	out := utils.Uniques(labels)
	sort.Strings(out)
	return out
}
