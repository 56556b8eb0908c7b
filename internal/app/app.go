package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/covet-app/covet/internal/config"
	"github.com/covet-app/covet/internal/httpserver"
	"github.com/covet-app/covet/internal/httpserver/deps"
	"github.com/covet-app/covet/internal/logger"
	"github.com/covet-app/covet/internal/mongo"
	"github.com/covet-app/covet/internal/redis"
	"github.com/covet-app/covet/internal/service/auth"
	"github.com/covet-app/covet/internal/service/directory"
	"github.com/covet-app/covet/internal/service/membership"
	"github.com/covet-app/covet/internal/service/products"
	"github.com/covet-app/covet/internal/service/wishlists"
	mongostore "github.com/covet-app/covet/internal/store/mongo"
	redisstore "github.com/covet-app/covet/internal/store/redis"
	"github.com/covet-app/covet/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	mongoClient *gomongo.Client
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize MongoDB early - fail fast if unavailable
	loggerClient.Infof("Connecting to MongoDB at %s", cfg.MongoURI)
	mongoClient, db, err := mongo.New(mongo.ConnectOptions{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDB,
		User:           cfg.MongoUser,
		Password:       cfg.MongoPassword,
		DialTimeout:    cfg.MongoDialTimeout,
		ConnectTimeout: cfg.MongoConnectTimeout,
		RetryInterval:  cfg.MongoRetryInterval,
		MaxWait:        cfg.MongoMaxWait,
		PingTimeout:    cfg.MongoPingTimeout,
		WarnThreshold:  cfg.MongoWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("MongoDB initialized successfully")

	st := mongostore.NewStore(db)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), cfg.MongoPingTimeout)
	defer idxCancel()
	if err := st.EnsureIndexes(idxCtx); err != nil {
		loggerClient.Errorf("Failed to ensure indexes: %v", err)
		os.Exit(1)
	}

	// Redis is optional; without it user searches hit MongoDB every time.
	var redisClient *goredis.Client
	var searchCache directory.Cache
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		searchCache = redisstore.NewSearchCache(redisClient, cfg.SearchCacheTTL)
		loggerClient.Info("Redis search cache initialized")
	} else {
		loggerClient.Info("Redis not configured, search cache disabled")
	}

	authSvc := auth.NewService(st.Users, cfg.JWTSecret, cfg.TokenTTL, loggerClient)
	directorySvc := directory.NewService(st.Users, searchCache, cfg.SearchLimit)
	wishlistsSvc := wishlists.NewService(st.Wishlists)
	membershipSvc := membership.NewService(st.Users, st.Wishlists, loggerClient)
	productsSvc := products.NewService(st.Wishlists)

	d := deps.Deps{
		Logger:     loggerClient,
		StartTime:  time.Now(),
		Version:    version.Version,
		Commit:     version.Commit,
		BuildDate:  version.BuildDate,
		GoVersion:  version.GoVersion,
		Auth:       authSvc,
		Directory:  directorySvc,
		Wishlists:  wishlistsSvc,
		Membership: membershipSvc,
		Products:   productsSvc,
		StorePing: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		mongoClient: mongoClient,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Covet v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Covet %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
		a.logger.Warnf("failed to disconnect mongo: %v", err)
	} else {
		a.logger.Info("✅ MongoDB closed cleanly")
	}

	a.logger.Info("✅ Covet stopped cleanly")
	return nil
}
