package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/errgroup"

	"homenest/internal/adapters/auth"
	server "homenest/internal/adapters/http_server"
	"homenest/internal/adapters/observability"
	redisad "homenest/internal/adapters/redis"
	"homenest/internal/app"
	"homenest/internal/domain"
	"homenest/internal/shared"
	"homenest/internal/storage/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file, using process environment")
	}
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store connection must succeed before anything listens; a dead
	// store at startup is fatal, not a degraded mode.
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Msg("database connection ok")
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	// deps
	properties := app.NewPropertyService(mongodb.NewProperties(db))
	reviews := app.NewReviewService(mongodb.NewReviews(db))
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	var limiter domain.Limiter
	if cfg.RedisAddr != "" {
		rl := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RateLimit, cfg.RateWindow)
		defer func() { _ = rl.Close() }()
		limiter = rl
	} else {
		limiter = server.NewLocalLimiter(float64(cfg.RateLimit)/cfg.RateWindow.Seconds(), cfg.RateLimit)
	}

	// http
	srv := server.New(cfg.AllowedOrigins, limiter)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Properties: properties, Reviews: reviews, Verifier: verifier})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
