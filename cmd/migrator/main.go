package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Jothi-Sri-K/ImpactLens/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ilyakaznacheev/cleanenv"
)

type migratorOpts struct {
	connStr   string
	sourceURL string
	tableName string
}

func main() {
	opts, err := loadOpts()
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}

	m, err := migrate.New(
		opts.sourceURL,
		fmt.Sprintf("%s?sslmode=disable&x-migrations-table=%s", opts.connStr, opts.tableName),
	)
	if err != nil {
		log.Fatalf("migrator: init failed: %v", err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	if err := run(m, direction); err != nil {
		log.Fatalf("migrator: %v", err)
	}
}

func run(m *migrate.Migrate, direction string) error {
	var err error
	switch direction {
	case "down":
		err = m.Down()
	default:
		err = m.Up()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("schema already at the requested version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	log.Printf("migration %s finished", direction)

	return nil
}

func loadOpts() (*migratorOpts, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	tableName := os.Getenv("MIGRATIONS_TABLE")
	if tableName == "" {
		tableName = "schema_migrations"
	}

	var cfg config.Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can't read config '%s': %w", configPath, err)
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Database,
	)

	return &migratorOpts{
		connStr:   connStr,
		sourceURL: "file://" + migrationsPath,
		tableName: tableName,
	}, nil
}
