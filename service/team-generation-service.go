package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kmteams/classification"
	"kmteams/metrics"
	"kmteams/parser"
	"kmteams/repository"
	"kmteams/utils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrEntryLoad      = errors.New("could not load entries")
	ErrTooManyEntries = errors.New("too many entries for a single generation run")
)

type entryStore interface {
	GetEntriesForYear(ctx context.Context, year int) ([]*repository.Entry, error)
	GetEntriesWithoutYear(ctx context.Context) ([]*repository.Entry, error)
}

type shooterStore interface {
	GetAllShooters(ctx context.Context) ([]*repository.Shooter, error)
}

type disciplineStore interface {
	GetAllDisciplines(ctx context.Context) ([]*repository.Discipline, error)
}

type generatedTeamStore interface {
	DeleteGeneratedTeamsForYear(ctx context.Context, year int) (int64, error)
	Create(ctx context.Context, team *repository.Team) error
}

type GenerationPublisher interface {
	Publish(ctx context.Context, report *GenerationReport) error
}

type TeamGenerationService struct {
	entryRepository      entryStore
	shooterRepository    shooterStore
	disciplineRepository disciplineStore
	teamRepository       generatedTeamStore
	publisher            GenerationPublisher
	maxEntries           int
	now                  func() time.Time
	newID                func() string
}

// NewTeamGenerationService wires the generator to the database. publisher may
// be nil, in which case no generation events are emitted.
func NewTeamGenerationService(db *gorm.DB, publisher GenerationPublisher, maxEntries int) *TeamGenerationService {
	return &TeamGenerationService{
		entryRepository:      repository.NewEntryRepository(db),
		shooterRepository:    repository.NewShooterRepository(db),
		disciplineRepository: repository.NewDisciplineRepository(db),
		teamRepository:       repository.NewTeamRepository(db),
		publisher:            publisher,
		maxEntries:           maxEntries,
		now:                  time.Now,
		newID:                uuid.NewString,
	}
}

type generationInput struct {
	entries     []*classification.Entry
	disciplines map[string]*classification.Discipline
}

type pendingTeam struct {
	model      *repository.Team
	diagnostic *TeamDiagnostic
}

// GenerateTeams replaces all generated teams of the competition year with a
// freshly computed set. Input is loaded and checked before anything is
// deleted, so a run that aborts leaves the previous generation in place.
// Old teams are always deleted before new ones are created.
func (s *TeamGenerationService) GenerateTeams(ctx context.Context, year int) (*GenerationReport, error) {
	timer := prometheus.NewTimer(metrics.GenerationDuration)
	defer timer.ObserveDuration()
	log := logrus.WithField("year", year)
	report := newGenerationReport(year)

	input, err := s.loadInput(ctx, year, report)
	if err != nil {
		log.WithError(err).Error("team generation aborted")
		metrics.GenerationRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	deleted, err := s.teamRepository.DeleteGeneratedTeamsForYear(ctx, year)
	if err != nil {
		log.WithError(err).Warn("could not delete previously generated teams")
		report.warn("previously generated teams for %d could not be deleted: %v", year, err)
	} else {
		report.DeletedCount = deleted
		log.WithField("deleted", deleted).Info("deleted previously generated teams")
	}

	if report.TotalEntries == 0 {
		report.summarize(0)
		log.Info(report.Message)
		metrics.GenerationRunsTotal.WithLabelValues("empty").Inc()
		return report, nil
	}

	pending := s.formTeams(input, year, report)
	s.persistTeams(ctx, pending, report)
	report.summarize(len(pending))

	log.WithFields(logrus.Fields{
		"entries":   report.TotalEntries,
		"generated": report.GeneratedCount,
		"excluded":  report.ExcludedCount,
		"leftovers": report.LeftoverCount,
		"warnings":  len(report.Warnings),
	}).Info("team generation finished")
	metrics.GenerationRunsTotal.WithLabelValues("success").Inc()
	s.publish(ctx, report)
	return report, nil
}

// loadInput reads entries, shooters and disciplines concurrently. Lookup
// tables that cannot be read degrade to empty maps.
func (s *TeamGenerationService) loadInput(ctx context.Context, year int, report *GenerationReport) (*generationInput, error) {
	var (
		entryRows      []*repository.Entry
		legacy         bool
		shooterRows    []*repository.Shooter
		shooterErr     error
		disciplineRows []*repository.Discipline
		disciplineErr  error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.entryRepository.GetEntriesForYear(gctx, year)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEntryLoad, err)
		}
		if len(rows) == 0 {
			rows, err = s.entryRepository.GetEntriesWithoutYear(gctx)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrEntryLoad, err)
			}
			legacy = len(rows) > 0
		}
		entryRows = rows
		return nil
	})
	g.Go(func() error {
		shooterRows, shooterErr = s.shooterRepository.GetAllShooters(gctx)
		return nil
	})
	g.Go(func() error {
		disciplineRows, disciplineErr = s.disciplineRepository.GetAllDisciplines(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if s.maxEntries > 0 && len(entryRows) > s.maxEntries {
		return nil, fmt.Errorf("%w: %d entries, limit is %d", ErrTooManyEntries, len(entryRows), s.maxEntries)
	}

	log := logrus.WithField("year", year)
	if shooterErr != nil {
		log.WithError(shooterErr).Warn("could not load shooters")
		report.warn("shooters could not be loaded, affected entries are excluded: %v", shooterErr)
		shooterRows = nil
	}
	if disciplineErr != nil {
		log.WithError(disciplineErr).Warn("could not load disciplines")
		report.warn("disciplines could not be loaded, affected entries are excluded: %v", disciplineErr)
		disciplineRows = nil
	}
	if legacy {
		report.LegacyEntries = true
		report.warn("no entries carry the year %d, using %d entries without a year", year, len(entryRows))
	}

	shooters, shooterFaults := parser.ParseShooters(shooterRows, year)
	disciplines, disciplineFaults := parser.ParseDisciplines(disciplineRows)
	entries, entryFaults := parser.ParseEntries(entryRows, shooters)
	faults := append(append(shooterFaults, disciplineFaults...), entryFaults...)
	for _, warning := range faultWarnings(faults) {
		report.warn("%s", warning)
	}
	report.TotalEntries = len(entries)
	return &generationInput{entries: entries, disciplines: disciplines}, nil
}

func (s *TeamGenerationService) formTeams(input *generationInput, year int, report *GenerationReport) []*pendingTeam {
	generatedAt := s.now()
	pending := make([]*pendingTeam, 0)
	for _, group := range classification.GroupEntries(input.entries) {
		discipline := input.disciplines[group.Key.DisciplineID]
		result := classification.Partition(group, year, discipline, generatedAt)
		diagnostic := newGroupDiagnostic(group, discipline, result)

		for _, team := range result.Teams {
			if len(team.Members) != classification.TeamSize {
				report.warn("skipped team %q of club %s with %d members", team.Name, team.ClubID, len(team.Members))
				continue
			}
			labels := classification.LabelTeam(team, discipline)
			if !labels.Homogeneous {
				metrics.NonHomogeneousTeamsTotal.Inc()
				report.warn("team %q of club %s in discipline %s mixes age classes: %v",
					team.Name, team.ClubID, team.DisciplineID, labels.Labels)
			}
			teamDiagnostic := &TeamDiagnostic{
				Name:            team.Name,
				EntryIDs:        team.EntryIDs(),
				Members:         memberNames(team),
				LMStartEntryIDs: team.LMStartEntryIDs(),
				AgeClasses:      labels.Labels,
				Homogeneous:     labels.Homogeneous,
			}
			diagnostic.Teams = append(diagnostic.Teams, teamDiagnostic)
			pending = append(pending, &pendingTeam{
				model:      toTeamModel(team, s.newID(), labels.Labels),
				diagnostic: teamDiagnostic,
			})
		}
		for reason, count := range diagnostic.Exclusions {
			metrics.EntriesExcludedTotal.WithLabelValues(string(reason)).Add(float64(count))
		}
		report.addGroup(diagnostic)
	}
	return pending
}

// persistTeams runs only after every group has been partitioned. A failed
// create is logged and does not stop the remaining ones.
func (s *TeamGenerationService) persistTeams(ctx context.Context, pending []*pendingTeam, report *GenerationReport) {
	for _, team := range pending {
		if err := s.teamRepository.Create(ctx, team.model); err != nil {
			metrics.TeamCreateErrorsTotal.Inc()
			logrus.WithError(err).WithFields(logrus.Fields{
				"team":       team.model.Name,
				"club":       team.model.ClubID,
				"discipline": team.model.DisciplineID,
			}).Error("could not save generated team")
			report.warn("team %q of club %s could not be saved: %v", team.model.Name, team.model.ClubID, err)
			continue
		}
		team.diagnostic.ID = team.model.ID
		team.diagnostic.Persisted = true
		report.GeneratedCount++
		metrics.TeamsGeneratedTotal.Inc()
	}
}

func (s *TeamGenerationService) publish(ctx context.Context, report *GenerationReport) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, report); err != nil {
		metrics.GenerationEventsPublishedTotal.WithLabelValues("error").Inc()
		logrus.WithError(err).WithField("year", report.Year).Warn("could not publish generation event")
		return
	}
	metrics.GenerationEventsPublishedTotal.WithLabelValues("ok").Inc()
}

func toTeamModel(team *classification.Team, id string, ageClasses []string) *repository.Team {
	generatedAt := team.GeneratedAt
	return &repository.Team{
		ID:              id,
		Name:            team.Name,
		ClubID:          team.ClubID,
		DisciplineID:    team.DisciplineID,
		CoarseKey:       team.CoarseKey,
		EntryIDs:        team.EntryIDs(),
		ShooterIDs:      team.ShooterIDs(),
		LMStartEntryIDs: team.LMStartEntryIDs(),
		AgeClasses:      ageClasses,
		Year:            team.Year,
		AutoGenerated:   true,
		GeneratedAt:     &generatedAt,
	}
}

func memberNames(team *classification.Team) []string {
	return utils.Map(team.Members, func(member *classification.Entry) string {
		if member.Shooter == nil {
			return ""
		}
		return member.Shooter.DisplayName
	})
}
