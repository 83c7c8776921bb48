package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"kmteams/app_error"
	"kmteams/auth"
	"kmteams/config"
	"kmteams/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type teamGenerator interface {
	GenerateTeams(ctx context.Context, year int) (*service.GenerationReport, error)
}

type TeamGenerationController struct {
	generator   teamGenerator
	cacheStore  persistence.CacheStore
	defaultYear int
	timeout     time.Duration
}

func NewTeamGenerationController(db *gorm.DB, cacheStore persistence.CacheStore, publisher service.GenerationPublisher, cfg *config.Config) *TeamGenerationController {
	return &TeamGenerationController{
		generator:   service.NewTeamGenerationService(db, publisher, cfg.MaxEntries),
		cacheStore:  cacheStore,
		defaultYear: cfg.DefaultCompetitionYear,
		timeout:     cfg.GenerationTimeout,
	}
}

func setupTeamGenerationController(db *gorm.DB, cacheStore persistence.CacheStore, publisher service.GenerationPublisher, cfg *config.Config) []RouteInfo {
	e := NewTeamGenerationController(db, cacheStore, publisher, cfg)
	basePath := "/teams"
	routes := []RouteInfo{
		{Method: "POST", Path: "/generate", HandlerFunc: e.generateTeamsHandler(), Authenticated: true, RequiredRoles: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Replaces all generated teams of a competition year
// @Tags team
// @Accept json
// @Produce json
// @Param body body GenerateTeamsRequest false "Competition year, defaults to the configured year"
// @Success 200 {object} GenerateTeamsResponse
// @Failure 500 {object} GenerateTeamsFailure
// @Security BearerAuth
// @Router /teams/generate [post]
func (e *TeamGenerationController) generateTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request GenerateTeamsRequest
		if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(400, GenerateTeamsFailure{Error: err.Error()})
			return
		}
		year := e.defaultYear
		if request.CompetitionYear != nil {
			year = *request.CompetitionYear
		}
		if year <= 0 {
			c.JSON(400, GenerateTeamsFailure{Error: fmt.Sprintf("invalid competition year %d", year)})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), e.timeout)
		defer cancel()
		report, err := e.generator.GenerateTeams(ctx, year)
		if err != nil {
			err = withGenerationStatus(err)
			logrus.WithError(err).WithField("year", year).Error("team generation failed")
			c.JSON(app_error.Status(err), GenerateTeamsFailure{Error: err.Error()})
			return
		}
		e.invalidateTeamPages(year)
		c.JSON(200, toGenerateTeamsResponse(report))
	}
}

// invalidateTeamPages drops cached team lists so that deleted team ids are
// not served after a run.
func (e *TeamGenerationController) invalidateTeamPages(year int) {
	if e.cacheStore == nil {
		return
	}
	if err := e.cacheStore.Flush(); err != nil {
		logrus.WithError(err).WithField("year", year).Warn("could not flush team page cache")
	}
}

func withGenerationStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrTooManyEntries):
		return app_error.New(err, http.StatusUnprocessableEntity)
	case errors.Is(err, context.DeadlineExceeded):
		return app_error.New(err, http.StatusGatewayTimeout)
	default:
		return err
	}
}

type GenerateTeamsRequest struct {
	CompetitionYear *int `json:"competition_year"`
}

type GenerateTeamsResponse struct {
	Success             bool                       `json:"success"`
	Year                int                        `json:"year"`
	Generated           int                        `json:"generated"`
	TotalEntries        int                        `json:"total_entries"`
	Excluded            int                        `json:"excluded"`
	Leftovers           int                        `json:"leftovers"`
	Deleted             int64                      `json:"deleted"`
	Message             string                     `json:"message"`
	Warnings            []string                   `json:"warnings,omitempty"`
	PerGroupDiagnostics []*service.GroupDiagnostic `json:"per_group_diagnostics,omitempty"`
}

type GenerateTeamsFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func toGenerateTeamsResponse(report *service.GenerationReport) GenerateTeamsResponse {
	return GenerateTeamsResponse{
		Success:             true,
		Year:                report.Year,
		Generated:           report.GeneratedCount,
		TotalEntries:        report.TotalEntries,
		Excluded:            report.ExcludedCount,
		Leftovers:           report.LeftoverCount,
		Deleted:             report.DeletedCount,
		Message:             report.Message,
		Warnings:            report.Warnings,
		PerGroupDiagnostics: report.Groups,
	}
}
