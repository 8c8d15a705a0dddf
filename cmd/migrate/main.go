package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/logging"

	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

func main() {
	command := flag.String("cmd", "up", "migration command [up | down | status]")
	timeout := flag.Duration("timeout", time.Minute, "max duration of the migration run")
	logLevel := flag.String("log-level", "debug", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	// only the store url is needed here, not the full service secrets
	var env struct {
		DBURL string `env:"FITX_DB_URL, required"`
	}
	if err := envconfig.Process(ctx, &env); err != nil {
		log.Errorf("load db url from env: %s", err)
		os.Exit(1)
	}

	var run func(ctx context.Context, dsn string) error
	switch *command {
	case "up":
		run = db.MigrateUp
	case "down":
		run = db.MigrateDown
	case "status":
		run = db.MigrationsStatus
	default:
		log.Errorf("unknown migration command: %s", *command)
		os.Exit(2)
	}

	if err := run(ctx, env.DBURL); err != nil {
		log.Errorf("migrate %s: %s", *command, err)
		os.Exit(1)
	}
	log.Infof("migrate %s done", *command)
}
