package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartcache "github.com/dwikikusuma/storefront/internal/cart/infra/cache"
	cartmongo "github.com/dwikikusuma/storefront/internal/cart/infra/mongo"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogpg "github.com/dwikikusuma/storefront/internal/catalog/infra/postgres"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/httpapi"
	"github.com/dwikikusuma/storefront/internal/notify"
	notifykafka "github.com/dwikikusuma/storefront/internal/notify/kafka"
	receiptapp "github.com/dwikikusuma/storefront/internal/receipt/app"
	receiptpg "github.com/dwikikusuma/storefront/internal/receipt/infra/postgres"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/metrics"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

const migrationsPath = "migrations"

type notifier interface {
	NotifyPurchase(ctx context.Context, receipt checkoutdomain.Receipt, recipient string) error
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "server",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	pgCfg := postgres.Config{
		Host: cfg.PostgresHost,
		Port: cfg.PostgresPort,
		User: cfg.PostgresUser,
		Pass: cfg.PostgresPass,
		DB:   cfg.PostgresDB,
	}

	if err := postgres.RunMigrations(pgCfg, migrationsPath); err != nil {
		log.Error("migrations failed", slog.Any("err", err))
		os.Exit(1)
	}

	pool, err := postgres.Connect(ctx, pgCfg)
	if err != nil {
		log.Error("postgres connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer pool.Close()

	mongoDB, err := cartmongo.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := mongoDB.Client().Disconnect(disconnectCtx); err != nil {
			log.Error("mongo disconnect error", slog.Any("err", err))
		}
	}()

	cartRepo := cartmongo.NewCartRepo(mongoDB)
	if err := cartRepo.CreateIndexes(ctx); err != nil {
		log.Error("mongo index creation failed", slog.Any("err", err))
		os.Exit(1)
	}

	var repo cartapp.CartRepo = cartRepo
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error("redis ping failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer rdb.Close()
		repo = cartcache.NewCachedRepo(cartRepo, cartcache.NewRedisCache(rdb), log)
		log.Info("cart cache enabled", slog.String("addr", cfg.RedisAddr))
	}

	checkoutMetrics := metrics.NewCheckoutMetrics()
	serverMetrics := metrics.NewServerMetrics("server")

	catalogSvc := catalogapp.NewService(catalogpg.NewProductRepo(pool))
	cartSvc := cartapp.NewService(repo)
	receiptSvc := receiptapp.NewService(receiptpg.NewReceiptRepo(pool), checkoutMetrics)

	var dispatch notifier = notify.NewLogDispatcher(log)
	if cfg.KafkaBrokers != "" {
		kd := notifykafka.NewDispatcher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := kd.Close(); err != nil {
				log.Error("kafka close error", slog.Any("err", err))
			}
		}()
		dispatch = kd
		log.Info("kafka notifications enabled", slog.String("topic", cfg.KafkaTopic))
	}

	checkoutSvc := checkoutapp.NewService(
		adapter.NewCartServiceStore(cartSvc),
		adapter.NewLedgerReserver(catalogSvc),
		adapter.NewReceiptServiceIssuer(receiptSvc),
		dispatch,
		log,
		checkoutMetrics,
		cfg.CheckoutMaxConcurrent,
	)

	handler := httpapi.NewHandler(catalogSvc, cartSvc, receiptSvc, checkoutSvc, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(serverMetrics),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
