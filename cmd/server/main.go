package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
	"github.com/Zulu-inventor33/alx-files-manager/internal/config"
	"github.com/Zulu-inventor33/alx-files-manager/internal/database"
	"github.com/Zulu-inventor33/alx-files-manager/internal/handlers"
	"github.com/Zulu-inventor33/alx-files-manager/internal/logger"
	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
	"github.com/Zulu-inventor33/alx-files-manager/internal/server"
	"github.com/Zulu-inventor33/alx-files-manager/internal/service"
	"github.com/Zulu-inventor33/alx-files-manager/internal/session"
	"github.com/Zulu-inventor33/alx-files-manager/internal/storage"
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
	rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, lg)
	if err != nil {
		lg.Fatalf("redis connect: %v", err)
	}

	users := repository.NewMongoUserRepo(db, "users")
	files := repository.NewMongoFileRepo(db, "files")

	sessions := session.New(session.NewRedisCache(rdb), cfg.SessionTTL)
	resolver := auth.NewResolver(users, sessions)

	thumbnailQueue := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ThumbnailTopic)
	welcomeQueue := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.WelcomeTopic)
	defer thumbnailQueue.Close()
	defer welcomeQueue.Close()

	disk := storage.NewDisk(cfg.Storage.Root)
	userSvc := service.NewUserService(users, welcomeQueue, lg)
	fileSvc := service.NewFileService(files, disk, thumbnailQueue, lg)

	app := server.New(cfg, lg, server.Handlers{
		App:   handlers.NewAppHandler(mc, rdb, users, files),
		Auth:  handlers.NewAuthHandler(resolver),
		Users: handlers.NewUserHandler(userSvc, resolver),
		Files: handlers.NewFileHandler(fileSvc, resolver),
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		lg.Infof("starting files manager api on %s", addr)
		if err := app.Listen(addr); err != nil {
			lg.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	lg.Info("shutdown requested")

	_ = app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	ctx, cancelDisconnect := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelDisconnect()
	_ = mc.Disconnect(ctx)
	_ = rdb.Close()
	lg.Info("shutdown completed")
}
