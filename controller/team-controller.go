package controller

import (
	"context"
	"strconv"
	"time"

	"kmteams/config"
	"kmteams/repository"
	"kmteams/service"
	"kmteams/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type teamReader interface {
	GetTeamsForYear(ctx context.Context, year int) ([]*repository.Team, error)
	GetTeamById(ctx context.Context, teamId string) (*repository.Team, error)
}

type TeamController struct {
	teamService teamReader
	defaultYear int
}

func NewTeamController(db *gorm.DB, cfg *config.Config) *TeamController {
	return &TeamController{
		teamService: service.NewTeamService(db),
		defaultYear: cfg.DefaultCompetitionYear,
	}
}

func setupTeamController(db *gorm.DB, cacheStore persistence.CacheStore, cfg *config.Config) []RouteInfo {
	e := NewTeamController(db, cfg)
	basePath := "/teams"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(cacheStore, 30*time.Second, e.getTeamsHandler())},
		{Method: "GET", Path: "/:team_id", HandlerFunc: e.getTeamHandler()},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all teams of a competition year
// @Tags team
// @Produce json
// @Param year query int false "Competition year"
// @Success 200 {array} TeamResponse
// @Router /teams [get]
func (e *TeamController) getTeamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		year := e.defaultYear
		if raw := c.Query("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			year = parsed
		}
		teams, err := e.teamService.GetTeamsForYear(c.Request.Context(), year)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(teams, toTeamResponse))
	}
}

// @Description Fetches a team by id
// @Tags team
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} TeamResponse
// @Router /teams/{teamId} [get]
func (e *TeamController) getTeamHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		team, err := e.teamService.GetTeamById(c.Request.Context(), c.Param("team_id"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Team not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toTeamResponse(team))
	}
}

type TeamResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	ClubID          string     `json:"club_id"`
	DisciplineID    string     `json:"discipline_id"`
	AgeClass        string     `json:"age_class"`
	EntryIDs        []string   `json:"entry_ids"`
	ShooterIDs      []string   `json:"shooter_ids"`
	LMStartEntryIDs []string   `json:"lm_start_entry_ids"`
	AgeClasses      []string   `json:"age_classes"`
	Year            int        `json:"year"`
	AutoGenerated   bool       `json:"auto_generated"`
	GeneratedAt     *time.Time `json:"generated_at,omitempty"`
}

func toTeamResponse(team *repository.Team) *TeamResponse {
	return &TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		ClubID:          team.ClubID,
		DisciplineID:    team.DisciplineID,
		AgeClass:        team.CoarseKey,
		EntryIDs:        team.EntryIDs,
		ShooterIDs:      team.ShooterIDs,
		LMStartEntryIDs: team.LMStartEntryIDs,
		AgeClasses:      team.AgeClasses,
		Year:            team.Year,
		AutoGenerated:   team.AutoGenerated,
		GeneratedAt:     team.GeneratedAt,
	}
}
