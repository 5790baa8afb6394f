package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Zulu-inventor33/alx-files-manager/internal/config"
	"github.com/Zulu-inventor33/alx-files-manager/internal/database"
	"github.com/Zulu-inventor33/alx-files-manager/internal/logger"
	"github.com/Zulu-inventor33/alx-files-manager/internal/mailer"
	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
	"github.com/Zulu-inventor33/alx-files-manager/internal/worker"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Env == "development")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, mc, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, lg)
	if err != nil {
		lg.Fatalf("mongo connect: %v", err)
	}

	users := repository.NewMongoUserRepo(db, "users")
	files := repository.NewMongoFileRepo(db, "files")
	mail := mailer.NewBrevo(cfg.Brevo.APIKey, cfg.Brevo.SenderEmail, cfg.Brevo.SenderName)
	if !mail.IsConfigured() {
		lg.Warn("brevo credentials missing; welcome email jobs will fail")
	}

	thumbnails := queue.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.ThumbnailTopic, cfg.Kafka.GroupID,
		cfg.JobTimeout, lg, worker.NewThumbnailer(files, lg).Handle,
	)
	welcome := queue.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.WelcomeTopic, cfg.Kafka.GroupID,
		cfg.JobTimeout, lg, worker.NewWelcomeMailer(users, mail, lg).Handle,
	)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := thumbnails.Run(ctx); err != nil && ctx.Err() == nil {
			lg.Errorf("thumbnail consumer stopped: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := welcome.Run(ctx); err != nil && ctx.Err() == nil {
			lg.Errorf("welcome consumer stopped: %v", err)
		}
	}()
	lg.Info("worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info("shutdown requested")

	cancel()
	_ = thumbnails.Close()
	_ = welcome.Close()
	wg.Wait()
	_ = mc.Disconnect(context.Background())
	lg.Info("shutdown completed")
}
