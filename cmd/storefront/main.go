package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ariefcatur/go-antique-storefront/internal/catalog"
	"github.com/ariefcatur/go-antique-storefront/internal/config"
	"github.com/ariefcatur/go-antique-storefront/internal/httpx"
	kafkax "github.com/ariefcatur/go-antique-storefront/internal/kafka"
	"github.com/ariefcatur/go-antique-storefront/internal/logx"
	"github.com/ariefcatur/go-antique-storefront/internal/orders"
	"github.com/ariefcatur/go-antique-storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logx.New(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeKV()

	// Kafka is optional; without brokers orders are only kept as last order.
	var pub orders.Publisher = orders.NopPublisher{}
	var prod *kafkax.Producer
	if cfg.KafkaEnabled() {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024, logger)
		prod.Start(context.Background())
		pub = &orders.KafkaPublisher{Producer: prod, Service: cfg.ServiceName}
	}

	shop, err := httpx.NewShopHandler(catalog.Default(), kv, pub, logger)
	if err != nil {
		logger.Fatal("templates", zap.Error(err))
	}
	router := httpx.NewRouter(cfg.SessionCookie)
	shop.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(sctx)
		if prod != nil {
			prod.Close()
			prod.WaitClosed()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exit", zap.Error(err))
	}
}
