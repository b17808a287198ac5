package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/ticket-shop-poc/internal/oddsfeed"
	"github.com/radieske/ticket-shop-poc/internal/shared/cache"
	"github.com/radieske/ticket-shop-poc/internal/shared/config"
	"github.com/radieske/ticket-shop-poc/internal/shared/db"
	sharedkafka "github.com/radieske/ticket-shop-poc/internal/shared/kafka"
	"github.com/radieske/ticket-shop-poc/internal/shared/logger"
	"github.com/radieske/ticket-shop-poc/internal/shared/metrics"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/auth"
	tcache "github.com/radieske/ticket-shop-poc/internal/ticket-service/cache"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/codebook"
	thttp "github.com/radieske/ticket-shop-poc/internal/ticket-service/http"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/producer"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/repo"
	"github.com/radieske/ticket-shop-poc/internal/ticket-service/settlement"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	if cfg.OddsAPIKey == "" {
		log.Warn("ODDS_API_KEY is not set; odds and scores fetches will fail")
	}

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()
	log.Info("postgres connected")

	// Redis
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()
	log.Info("redis connected")

	// Kafka writers (ticket_placed / ticket_settled)
	placedWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicTicketPlaced)
	defer placedWriter.Close()
	settledWriter := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicTicketSettled)
	defer settledWriter.Close()

	// deps
	repository := repo.NewPostgres(pg)
	if err := repository.SeedDefaultUsers(context.Background()); err != nil {
		log.Fatal("seed users", zap.Error(err))
	}

	feed := oddsfeed.New(cfg.OddsAPIBaseURL, cfg.OddsAPIKey)
	publ := producer.NewKafkaPublisher(placedWriter, settledWriter)
	refresher := codebook.NewRefresher(log, feed, repository)
	orch := settlement.NewOrchestrator(log, feed, repository, publ)
	authmgr := auth.NewManager(cfg.JWTSecret)
	bookCache := tcache.New(rdb)

	// HTTP público
	api := thttp.NewServer(log, repository, bookCache, refresher, orch, authmgr, publ)
	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("ticket-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
