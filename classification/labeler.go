package classification

type TeamLabels struct {
	Homogeneous bool
	Labels      []string
}

// LabelTeam recomputes the fine label of every member from scratch. Members
// that can no longer be classified are reported under their exclusion reason
// so that the result is never homogeneous by omission.
func LabelTeam(team *Team, discipline *Discipline) TeamLabels {
	labels := make([]string, 0, len(team.Members))
	for _, member := range team.Members {
		ageClass, err := ClassifyEntry(member, team.Year, discipline)
		if err != nil {
			labels = append(labels, string(Reason(err)))
			continue
		}
		labels = append(labels, ageClass.FineLabel)
	}
	distinct := distinctSorted(labels)
	return TeamLabels{
		Homogeneous: len(distinct) == 1,
		Labels:      distinct,
	}
}
