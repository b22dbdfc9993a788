package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"jobhunt/internal/config"
	"jobhunt/internal/database"
	"jobhunt/internal/database/migration"
	dbpostgres "jobhunt/internal/database/postgres"
	"jobhunt/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to MIGRATIONS_DIR, then the embedded files)")
	status := flag.Bool("status", false, "print applied and pending migrations and exit")
	seed := flag.Bool("seed", false, "run demo seeders after migrating")
	seedOnly := flag.Bool("seed-only", false, "skip migrations and only run seeders")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.LoadTools()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.Database.MigrationsDir = *dir
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	logger := log.Default()
	runner := migration.Runner{FS: migration.Source(cfg.Database.MigrationsDir), Logger: logger}

	switch {
	case *status:
		printStatus(ctx, runner, db)
	case *seedOnly:
		runSeeders(ctx, db, logger)
	default:
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		log.Printf("migrations up to date")
		if *seed {
			runSeeders(ctx, db, logger)
		}
	}
}

func printStatus(ctx context.Context, runner migration.Runner, db database.DB) {
	list, err := runner.Status(ctx, db.SQLDB())
	if err != nil {
		log.Fatalf("migration status failed: %v", err)
	}

	out := log.New(os.Stdout, "", 0)
	for _, s := range list {
		state := "pending"
		if s.AppliedAt != nil {
			state = "applied " + s.AppliedAt.Format(time.RFC3339)
		}
		out.Printf("V%-4d %-32s %s", s.Version, s.Name, state)
	}
}

func runSeeders(ctx context.Context, db database.DB, logger *log.Logger) {
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
	if err := r.Run(ctx, db); err != nil {
		log.Fatalf("seeders failed: %v", err)
	}
	log.Printf("seeders completed")
}
