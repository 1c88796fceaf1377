package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Shuon777/course-work-master/internal/api/tasks"
	"github.com/Shuon777/course-work-master/internal/config"
	"github.com/Shuon777/course-work-master/internal/lib/logger"
	"github.com/Shuon777/course-work-master/internal/storage/postgres"
	pgmodels "github.com/Shuon777/course-work-master/internal/storage/postgres/models"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()
	godotenv.Load()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Conn.Close()
	if err := storage.Bootstrap(ctx); err != nil {
		panic(err)
	}
	log.Info("database connection established")

	bgTasks := tasks.New(log, cfg.BgTasks.MaxWorkers, cfg.BgTasks.QueueSize)
	app := NewApplication(cfg, log, pgmodels.New(storage), bgTasks)
	bgTasks.Run()
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}
