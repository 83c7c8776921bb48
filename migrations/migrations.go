package main

import (
	"database/sql"
	"fmt"
	"os"

	"kmteams/config"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Env()
	log := config.InitLogger(cfg)

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.DatabaseName,
		config.SchemaName,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db)
	if err != nil {
		log.Fatal(err)
	}

	for {
		version++
		err = migrateUp(db, version)
		if err != nil {
			break
		}
	}
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		logrus.WithField("version", version-1).Info("Cannot migrate further up")
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		logrus.WithError(err).WithField("version", version).Error("error executing migration")
		_ = tx.Rollback()
		return err
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		logrus.WithError(err).WithField("version", version).Error("error updating migration version")
		_ = tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	logrus.WithField("version", version).Info("Migrated")
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + config.SchemaName); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	if err != nil {
		return err
	}
	return nil
}
