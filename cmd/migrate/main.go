package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/logger"

	"go.uber.org/zap"
)

const usage = `Usage: migrate <command>

Commands:
  up      apply all pending migrations
  down    roll back the most recent migration
  status  print the state of every migration
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	os.Exit(run(flag.Args()))
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// validCommand reports whether args name exactly one known migration command
func validCommand(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch args[0] {
	case "up", "down", "status":
		return true
	}
	return false
}

// run executes one migration command and returns the process exit code.
// Deferred cleanup always runs before main exits.
func run(args []string) int {
	if !validCommand(args) {
		flag.Usage()
		return exitUsage
	}

	cfg := config.Load()
	log := logger.NewWithDefaults()
	defer log.Sync()

	db, err := database.Open(context.Background(), cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return exitError
	}
	defer db.Close()

	switch args[0] {
	case "up":
		err = database.RunMigrations(db, log)
	case "down":
		err = database.RollbackMigration(db, log)
	case "status":
		err = database.GetMigrationStatus(db)
	}

	if err != nil {
		log.Error("Migration command failed", zap.String("command", args[0]), zap.Error(err))
		return exitError
	}

	return exitOK
}
