package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kmteams/repository"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTeamReader struct {
	teams map[int][]*repository.Team
	calls int
	err   error
}

func (f *fakeTeamReader) GetTeamsForYear(ctx context.Context, year int) ([]*repository.Team, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.teams[year], nil
}

func (f *fakeTeamReader) GetTeamById(ctx context.Context, teamId string) (*repository.Team, error) {
	for _, teams := range f.teams {
		for _, team := range teams {
			if team.ID == teamId {
				return team, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTeamRouter(reader *fakeTeamReader) *gin.Engine {
	e := &TeamController{teamService: reader, defaultYear: 2025}
	store := persistence.NewInMemoryStore(time.Minute)
	r := gin.New()
	r.GET("/api/teams", cache.CachePage(store, time.Minute, e.getTeamsHandler()))
	r.GET("/api/teams/:team_id", e.getTeamHandler())
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetTeams(t *testing.T) {
	reader := &fakeTeamReader{teams: map[int][]*repository.Team{
		2024: {{ID: "t-1", Name: "Jung Team 1", ClubID: "club-1", DisciplineID: "lp", CoarseKey: "Jung", Year: 2024, AutoGenerated: true, LMStartEntryIDs: []string{"e2"}}},
		2025: {{ID: "t-2", Name: "Manual", Year: 2025}},
	}}
	r := newTeamRouter(reader)

	w := get(r, "/api/teams?year=2024")
	require.Equal(t, 200, w.Code)
	var teams []TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "Jung", teams[0].AgeClass)
	assert.True(t, teams[0].AutoGenerated)
	assert.Equal(t, []string{"e2"}, teams[0].LMStartEntryIDs)

	w = get(r, "/api/teams")
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "t-2", teams[0].ID)
}

func TestGetTeamsIsCached(t *testing.T) {
	reader := &fakeTeamReader{teams: map[int][]*repository.Team{}}
	r := newTeamRouter(reader)

	get(r, "/api/teams?year=2024")
	get(r, "/api/teams?year=2024")

	assert.Equal(t, 1, reader.calls)
}

func TestGetTeamsErrors(t *testing.T) {
	assert.Equal(t, 400, get(newTeamRouter(&fakeTeamReader{}), "/api/teams?year=abc").Code)
	assert.Equal(t, 500, get(newTeamRouter(&fakeTeamReader{err: errors.New("db down")}), "/api/teams?year=2024").Code)
}

func TestGetTeam(t *testing.T) {
	reader := &fakeTeamReader{teams: map[int][]*repository.Team{
		2025: {{ID: "t-2", Name: "Manual", Year: 2025}},
	}}
	r := newTeamRouter(reader)

	assert.Equal(t, 200, get(r, "/api/teams/t-2").Code)
	assert.Equal(t, 404, get(r, "/api/teams/missing").Code)
}
