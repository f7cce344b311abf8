package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/config"
	"github.com/pageza/nutrilog/backend/internal/database"
	"github.com/pageza/nutrilog/backend/internal/logging"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directory holding SQL migrations")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	log := logging.New(cfg)

	db, err := database.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := database.RunMigrations(db, *migrationsDir, log); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.WithField("driver", cfg.DBDriver).Info("migrations complete")
}
