package main

import (
	"database/sql"
	"flag"
	"os"

	"campshop/pkg/config"
	"campshop/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, status, reset, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if err := run(db, *command, *dir, *name); err != nil {
		log.Error("Migration command %s failed: %v", *command, err)
		os.Exit(1)
	}
	log.Info("Migration command %s finished", *command)
}

func run(db *sql.DB, command, dir, name string) error {
	switch command {
	case "create":
		if name == "" {
			return errMissingName
		}
		return goose.Create(db, dir, name, "sql")
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "reset":
		return goose.Reset(db, dir)
	case "status":
		return goose.Status(db, dir)
	}
	return errUnknownCommand(command)
}
