package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/internal/validation"
	"github.com/stitts-dev/caddie/pkg/config"
	"github.com/stitts-dev/caddie/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.NewGormStore(db.DB)

	switch command := os.Args[1]; command {
	case "up":
		if err := st.Migrate(); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := st.Migrate(); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		if err := seedData(context.Background(), st, cfg.FixturesPath); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func dropTables(db *database.DB) error {
	// Reverse order so child tables go first
	records := store.AllRecords()
	for i := len(records) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(records[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", records[i], err)
		}
	}
	return nil
}

func seedData(ctx context.Context, st store.Store, dir string) error {
	courses, err := fixtures.LoadCourses(dir)
	if err != nil {
		return err
	}

	for i := range courses {
		c := &courses[i]
		for j := range c.Holes {
			if err := validation.Hole(&c.Holes[j]); err != nil {
				return fmt.Errorf("course %s hole %d: %w", c.ID, c.Holes[j].Number, err)
			}
		}
		if err := st.SaveCourse(ctx, c); err != nil {
			return fmt.Errorf("failed to save course %s: %w", c.ID, err)
		}
		report := store.CheckCourse(*c)
		for _, issue := range report.Issues {
			logrus.WithField("course_id", c.ID).Warnf("Data quality: %s", issue.Message)
		}
	}

	demo := fixtures.DefaultBaseline("demo", "Demo Player")
	if err := st.ReplacePlayerBaseline(ctx, &demo); err != nil {
		return fmt.Errorf("failed to save demo baseline: %w", err)
	}

	logrus.Infof("Seeded %d courses and 1 player baseline", len(courses))
	return nil
}
