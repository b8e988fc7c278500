package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leadcore/cms-backend/internal/auth"
	"github.com/leadcore/cms-backend/internal/config"
	"github.com/leadcore/cms-backend/internal/content/handler"
	"github.com/leadcore/cms-backend/internal/content/repository"
	"github.com/leadcore/cms-backend/internal/database"
	"github.com/leadcore/cms-backend/internal/storage"
	"github.com/leadcore/cms-backend/internal/tokens"
	"github.com/leadcore/cms-backend/pkg/logger"
	"github.com/leadcore/cms-backend/pkg/metrics"
	"github.com/leadcore/cms-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s mongo=%v redis=%v", cfg.CMS.Backend, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: the public site and admin
	// shell are served from a different origin than this API.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Session-Token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Connect to Redis early so the rate limiter and session store can use it
	// when configured.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			redisClient = rc
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Content store: local embedded file or Mongo, selected by configuration.
	// Everything downstream sees only the repository.Store interface.
	var store repository.Store
	switch cfg.CMS.Backend {
	case config.BackendMongo:
		// Retry with backoff to tolerate container startup races.
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		}
		defer func() { _ = client.Disconnect(ctx) }()
		ms := repository.NewMongoStore(client.Database(cfg.MongoDB.Database))
		if err := ms.EnsureIndexes(ctx); err != nil {
			logger.Fatalf("failed to ensure MongoDB indexes: %v", err)
		}
		store = ms
		logger.Infof("using MongoDB content store (db=%s)", cfg.MongoDB.Database)
	default:
		ls, err := repository.NewLocalStore(cfg.CMS.LocalPath, cfg.CMS.Seed)
		if err != nil {
			logger.Fatalf("failed to open local content store at %s: %v", cfg.CMS.LocalPath, err)
		}
		defer func() { _ = ls.Close() }()
		store = ls
		logger.Infof("using local content store at %s (seed=%v)", cfg.CMS.LocalPath, cfg.CMS.Seed)
	}
	store = repository.NewInstrumentedStore(store)

	// Admin sessions persist in Redis when available so logins survive restarts.
	var sessionRepo auth.Repository
	if redisClient != nil {
		sessionRepo = auth.NewRedisRepository(redisClient, "admin_session:")
		logger.Infof("using Redis for admin session storage")
	} else {
		sessionRepo = auth.NewMemoryRepository()
		logger.Warnf("using in-memory admin sessions; logins will not survive restarts")
	}
	authSvc := auth.NewService(sessionRepo, auth.Credentials{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, cfg.Admin.SessionTTL)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the content store and session store are wired
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"store":    store != nil,
			"sessions": sessionRepo != nil,
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
		}
		ready := true
		for _, ok := range deps {
			ready = ready && ok
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	cmsHandler := handler.New(store)
	authHandler := auth.NewHandler(authSvc, cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)

	api := r.Group("/api")
	cmsHandler.RegisterPublic(api)
	authHandler.Register(api.Group("/auth"))

	admin := api.Group("/admin", middleware.AuthMiddleware(&tokens.Verifier{Secret: cfg.JWT.Secret}))
	cmsHandler.RegisterAdmin(admin)

	// Optional media uploads when object storage is configured.
	if mediaCfg := storage.LoadMediaConfig(); mediaCfg.Endpoint != "" {
		media, err := storage.NewMediaStorage(mediaCfg)
		if err != nil {
			logger.Warnf("media storage unavailable: %v", err)
		} else {
			storage.NewHandler(media).Register(admin.Group("/media"))
			logger.Infof("media uploads enabled (bucket=%s)", mediaCfg.Bucket)
		}
	}

	handler.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting CMS backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
