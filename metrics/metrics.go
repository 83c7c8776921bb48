package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GenerationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "km_team_generation_runs_total",
	Help: "Number of team generation runs by outcome",
}, []string{"outcome"})

var TeamsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "km_teams_generated_total",
	Help: "Number of teams persisted by the generator",
})

var TeamCreateErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "km_team_create_errors_total",
	Help: "Number of generated teams that could not be persisted",
})

var EntriesExcludedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "km_entries_excluded_total",
	Help: "Entries excluded from team formation by reason",
}, []string{"reason"})

var NonHomogeneousTeamsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "km_non_homogeneous_teams_total",
	Help: "Generated teams whose members carry more than one age class label",
})

var GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "km_team_generation_duration_seconds",
	Help: "Duration of a complete team generation run",
	Buckets: []float64{
		0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 30,
	},
})

var GenerationEventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "km_generation_events_published_total",
	Help: "Generation summary events written to kafka by status",
}, []string{"status"})
