package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("Could not construct pool, skipping database tests: %s", err)
		os.Exit(m.Run())
	}
	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		log.Printf("Could not connect to Docker, skipping database tests: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "verein.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return db.Exec(`CREATE SCHEMA IF NOT EXISTS verein`).Error
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	if err := applyMigrations(db); err != nil {
		log.Fatalf("Could not apply migrations: %s", err)
	}

	code := m.Run()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

// applyMigrations runs the numbered SQL files the migrations command applies
// in production.
func applyMigrations(db *gorm.DB) error {
	files, err := filepath.Glob("../migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Slice(files, func(i, j int) bool {
		return migrationVersion(files[i]) < migrationVersion(files[j])
	})
	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		for _, statement := range strings.Split(string(sql), ";") {
			if strings.TrimSpace(statement) == "" {
				continue
			}
			if err := db.Exec(statement).Error; err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
	}
	return nil
}

func migrationVersion(file string) int {
	version, _ := strconv.Atoi(strings.TrimSuffix(filepath.Base(file), ".sql"))
	return version
}

func requireDB(t *testing.T) {
	t.Helper()
	if db == nil {
		t.Skip("docker not available")
	}
}

func tearDown() {
	db.Exec("DELETE FROM verein.teams")
	db.Exec("DELETE FROM verein.entries")
	db.Exec("DELETE FROM verein.shooters")
	db.Exec("DELETE FROM verein.disciplines")
}

func intPtr(i int) *int { return &i }

func TestDeleteGeneratedTeamsForYearKeepsManualAndOtherYears(t *testing.T) {
	requireDB(t)
	defer tearDown()
	ctx := context.Background()
	repo := NewTeamRepository(db)
	now := time.Now()

	teams := []*Team{
		{ID: "gen-2025", Name: "Jung Team 1", ClubID: "c", DisciplineID: "d", EntryIDs: []string{"1", "2", "3"}, ShooterIDs: []string{"a", "b", "c"}, AgeClasses: []string{"Herren I"}, Year: 2025, AutoGenerated: true, GeneratedAt: &now},
		{ID: "manual-2025", Name: "Manual", ClubID: "c", DisciplineID: "d", EntryIDs: []string{"4", "5", "6"}, ShooterIDs: []string{"d", "e", "f"}, AgeClasses: []string{"Damen I"}, Year: 2025},
		{ID: "gen-2024", Name: "Jung Team 1", ClubID: "c", DisciplineID: "d", EntryIDs: []string{"7", "8", "9"}, ShooterIDs: []string{"g", "h", "i"}, AgeClasses: []string{"Herren I"}, Year: 2024, AutoGenerated: true},
	}
	for _, team := range teams {
		require.NoError(t, repo.Create(ctx, team))
	}

	deleted, err := repo.DeleteGeneratedTeamsForYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.DeleteGeneratedTeamsForYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	remaining2025, err := repo.GetTeamsForYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, remaining2025, 1)
	assert.Equal(t, "manual-2025", remaining2025[0].ID)

	remaining2024, err := repo.GetTeamsForYear(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, remaining2024, 1)
	assert.Equal(t, []string{"7", "8", "9"}, []string(remaining2024[0].EntryIDs))
}

func TestEntriesForYearAndLegacyEntries(t *testing.T) {
	requireDB(t)
	defer tearDown()
	ctx := context.Background()
	repo := NewEntryRepository(db)

	_, err := repo.Save(ctx, &Entry{ID: "e1", ShooterID: "s1", DisciplineID: "d1", Year: intPtr(2025)})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &Entry{ID: "e2", ShooterID: "s2", DisciplineID: "d1", Year: intPtr(2024)})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &Entry{ID: "e3", ShooterID: "s3", DisciplineID: "d1"})
	require.NoError(t, err)

	entries, err := repo.GetEntriesForYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)

	legacy, err := repo.GetEntriesWithoutYear(ctx)
	require.NoError(t, err)
	require.Len(t, legacy, 1)
	assert.Equal(t, "e3", legacy[0].ID)
}

func TestShootersAndDisciplines(t *testing.T) {
	requireDB(t)
	defer tearDown()
	ctx := context.Background()
	gender := "female"
	km := "club-km"

	_, err := NewShooterRepository(db).Save(ctx, &Shooter{ID: "s1", Name: "Erika Muster", BirthYear: intPtr(1970), Gender: &gender, ClubID: "club", KMClubID: &km})
	require.NoError(t, err)
	_, err = NewDisciplineRepository(db).Save(ctx, &Discipline{ID: "d1", SpoNumber: "1.41", Name: "Luftgewehr Auflage", RestSupported: true})
	require.NoError(t, err)

	shooters, err := NewShooterRepository(db).GetAllShooters(ctx)
	require.NoError(t, err)
	require.Len(t, shooters, 1)
	assert.Equal(t, "club-km", *shooters[0].KMClubID)

	discipline, err := NewDisciplineRepository(db).GetDisciplineById(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, discipline.RestSupported)
	assert.Equal(t, "1.41", discipline.SpoNumber)

	_, err = NewDisciplineRepository(db).GetDisciplineById(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
