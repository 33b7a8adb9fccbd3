package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/config"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
)

// Применяет или откатывает миграции из ./migrations
// Использование: migrate [-config config.toml] [-dir migrations] [up|down|version]
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dir := flag.String("dir", "migrations", "path to migrations directory")
	flag.Parse()

	log := logger.NewWithWriter(os.Stdout, "info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// DB_URL перекрывает конфиг, удобно для CI
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		dbURL = cfg.Database.URL()
	}

	absDir, err := filepath.Abs(*dir)
	if err != nil {
		log.Fatal("Failed to resolve migrations directory: %v", err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		log.Fatal("Migrations directory not found: %s", absDir)
	}

	m, err := migrate.New("file://"+absDir, dbURL)
	if err != nil {
		log.Fatal("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration up failed: %v", err)
		}
		log.Info("Migration up successful")

	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Migration down failed: %v", err)
		}
		log.Info("Migration down successful (one step)")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal("Failed to read version: %v", err)
		}
		log.Info("Current version: %d (dirty=%t)", version, dirty)

	default:
		log.Fatal("Unknown command %q, expected up | down | version", cmd)
	}
}
