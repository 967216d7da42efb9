package main

import (
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"strconv"

	"petshop-api/internal/infra/db"
	"petshop-api/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
)

// Usage: migrate [up|down|force <version>]
func main() {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		fatal("load config", err)
	}

	conn, err := sql.Open("pgx", cfg.BuildDSN())
	if err != nil {
		fatal("open db", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.Ping(); err != nil {
		fatal("ping db", err)
	}

	m, err := db.NewMigrator(conn)
	if err != nil {
		fatal("create migrator", err)
	}
	defer func() { _, _ = m.Close() }()

	cmd := "up"
	if len(os.Args) >= 2 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if len(os.Args) < 3 {
			fatal("force", errors.New("version is required"))
		}
		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			fatal("invalid version", convErr)
		}
		err = m.Force(version)
	default:
		fatal("unknown command", errors.New(cmd))
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fatal("migrate "+cmd, err)
	}

	version, dirty, _ := m.Version()
	slog.Info("migrations complete", "command", cmd, "version", version, "dirty", dirty)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
