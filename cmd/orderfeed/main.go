package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ariefcatur/go-antique-storefront/internal/config"
	kafkax "github.com/ariefcatur/go-antique-storefront/internal/kafka"
	"github.com/ariefcatur/go-antique-storefront/internal/logx"
	"github.com/ariefcatur/go-antique-storefront/internal/orderfeed"
	"github.com/ariefcatur/go-antique-storefront/internal/orders"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	name := cfg.ServiceName + "-orderfeed"

	logger, err := logx.New(cfg.LogLevel, name)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.KafkaEnabled() {
		logger.Fatal("KAFKA_BROKERS is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer closeKV()

	svc := &orderfeed.Service{KV: kv, Log: logger, ServiceName: name}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.FeedGroup, orders.TopicOrderPlaced, cfg.FeedWorkers, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("order feed consumer started",
			zap.String("group", cfg.FeedGroup),
			zap.String("topic", orders.TopicOrderPlaced),
			zap.Int("workers", cfg.FeedWorkers))
		return cons.Start(gctx, svc.HandleOrderPlaced)
	})
	if err := g.Wait(); err != nil {
		logger.Error("consumer exit", zap.Error(err))
	}
	logger.Info("order feed stopped")
}
