package classification

import (
	"sort"
	"strings"
)

type GroupKey struct {
	ClubID       string
	DisciplineID string
}

func (k GroupKey) String() string {
	return k.ClubID + "/" + k.DisciplineID
}

type EntryGroup struct {
	Key     GroupKey
	Entries []*Entry
}

// ResolveClubID picks the club an entry competes for: the shooter's KM
// override, then the shooter's club, then the club stored on the entry.
func ResolveClubID(entry *Entry) string {
	if entry.Shooter != nil {
		if id := strings.TrimSpace(entry.Shooter.KMClubID); id != "" {
			return id
		}
		if id := strings.TrimSpace(entry.Shooter.ClubID); id != "" {
			return id
		}
	}
	if id := strings.TrimSpace(entry.ClubID); id != "" {
		return id
	}
	return Unknown
}

func resolveDisciplineID(entry *Entry) string {
	if id := strings.TrimSpace(entry.DisciplineID); id != "" {
		return id
	}
	return Unknown
}

// GroupEntries partitions entries by (club, discipline). Groups are returned
// sorted by key; entries keep their input order within a group.
func GroupEntries(entries []*Entry) []*EntryGroup {
	groups := make(map[GroupKey]*EntryGroup)
	for _, entry := range entries {
		key := GroupKey{ClubID: ResolveClubID(entry), DisciplineID: resolveDisciplineID(entry)}
		group, ok := groups[key]
		if !ok {
			group = &EntryGroup{Key: key, Entries: make([]*Entry, 0)}
			groups[key] = group
		}
		group.Entries = append(group.Entries, entry)
	}
	out := make([]*EntryGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.ClubID != out[j].Key.ClubID {
			return out[i].Key.ClubID < out[j].Key.ClubID
		}
		return out[i].Key.DisciplineID < out[j].Key.DisciplineID
	})
	return out
}
