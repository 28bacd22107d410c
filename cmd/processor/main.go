package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vidspark/config"
	"vidspark/internal/cache"
	"vidspark/internal/db"
	"vidspark/internal/ffmpeg"
	"vidspark/internal/jobs"
	"vidspark/internal/queue"
	"vidspark/internal/storage"
	"vidspark/internal/worker"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		config.Log.Fatalf("Invalid configuration: %v", err)
	}
	log := config.InitLogger(settings.LogLevel)
	log.Info("Starting Video Processor...")

	rest, err := config.NewRestClient(settings)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	dbClient := db.New(rest, log)

	supabase, err := config.InitSupabase(settings)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.NewRedisClient(ctx, cache.RedisConfig{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dispatcher := worker.NewDispatcher(settings.Workers, settings.QueueSize, dbClient, log)
	// Jobs in flight finish on shutdown; the consumer stops taking new ones.
	dispatcher.Run(context.WithoutCancel(ctx))

	consumer := &jobs.Consumer{
		Source: queue.New(redisClient, queue.DefaultKey),
		Factory: &jobs.Factory{
			Store:               dbClient,
			Resolver:            storage.NewResolver(supabase, settings.AudioBucket),
			Prober:              ffmpeg.Prober{},
			DefaultFrameRate:    settings.FrameRate,
			DefaultSceneSeconds: settings.DefaultSceneSeconds,
			Log:                 log,
		},
		Pool:     dispatcher,
		Reporter: dbClient,
		Log:      log,
	}
	consumer.Run(ctx)

	log.Info("Shutting down Video Processor...")
	dispatcher.Stop()
	log.Info("Video Processor shut down gracefully.")
}
