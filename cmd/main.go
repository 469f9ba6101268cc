package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training-plan-server/config"
	_ "training-plan-server/docs"
	"training-plan-server/internal/handler"
	"training-plan-server/internal/middleware"
	"training-plan-server/internal/model"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/repository"
	"training-plan-server/internal/security"
	"training-plan-server/internal/service"
	"training-plan-server/internal/util"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Training Plan Server
// @version 1.0
// @description REST API подключения Strava и генерации планов тренировок

// @host localhost:3000
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	util.SetupLogger(cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Некорректная конфигурация: %v", err)
	}

	tokenStore, closeStore, err := setupTokenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища токенов: %v", err)
	}
	defer closeStore()

	httpClient := &http.Client{Timeout: cfg.Server.HTTPTimeout}

	stateSigner := security.NewStateSigner(stateConfig(cfg))
	oauthClient := service.NewStravaOAuthClient(&cfg.Strava, httpClient)
	authService := service.NewStravaAuthService(tokenStore, oauthClient, stateSigner, model.PublicStravaConfig{
		ClientID:              cfg.Strava.ClientID,
		AuthorizationEndpoint: cfg.Strava.AuthorizationEndpoint,
		Scopes:                cfg.Strava.Scopes,
	})
	stravaService := service.NewStravaService(authService, service.NewStravaAPIClient(cfg.Strava.APIBaseURL, httpClient))

	generator, err := service.NewGeminiGenerator(ctx, &cfg.Gemini)
	if err != nil {
		log.Fatalf("Ошибка создания клиента Gemini: %v", err)
	}

	var archive ports.PlanArchive
	if cfg.Archive.Bucket != "" {
		s3Archive, err := service.SetupS3PlanArchive(ctx, &cfg.Archive)
		if err != nil {
			log.Fatalf("Ошибка создания S3 архива: %v", err)
		}
		archive = s3Archive
	}

	planService, err := service.NewPlanService(generator, archive)
	if err != nil {
		log.Fatalf("Ошибка создания сервиса планов: %v", err)
	}

	stravaHandler := handler.NewStravaHandler(authService, stravaService)
	trainingHandler := handler.NewTrainingHandler(planService, stravaService)
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	srv, router := config.SetupServer(cfg.Server.Port)

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger())
	router.Use(chimw.Recoverer)
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.Server.CORSOrigin))
	router.Use(chimw.Compress(5))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		util.HandleError(w, "маршрут не найден", http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		util.HandleError(w, "метод не поддерживается", http.StatusMethodNotAllowed)
	})

	router.Get("/health", handler.Health(cfg.Server.APIVersion))
	router.Handle("/metrics", promhttp.Handler())
	if !cfg.IsProduction() {
		router.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	router.Route(cfg.APIPrefix(), func(r chi.Router) {
		stravaHandler.Register(r)
		trainingHandler.Register(r, limiter.Middleware())
	})

	runServer(ctx, srv)
}

// setupTokenStore : хранилище по TOKEN_STORE_DRIVER, с шифрованием если задан ключ
func setupTokenStore(ctx context.Context, cfg *config.AppConfig) (ports.TokenStore, func(), error) {
	var store ports.TokenStore
	closeFn := func() {}

	switch cfg.TokenStore.Driver {
	case "", "memory":
		if cfg.IsProduction() {
			slog.Warn("токены Strava хранятся в памяти и будут потеряны при перезапуске")
		}
		store = repository.NewMemoryTokenRepository()

	case "redis":
		redisClient, err := config.SetupRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewRedisTokenRepository(redisClient, cfg.Redis.TTL)
		closeFn = func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("ошибка при закрытии Redis", "err", err)
			}
		}

	case "postgres", "sqlite":
		db, err := config.SetupDatabase(cfg.TokenStore.Driver, cfg.TokenStore.DSN)
		if err != nil {
			return nil, nil, err
		}
		sqlStore := repository.NewSQLTokenRepository(db)
		if err := sqlStore.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		store = sqlStore
		closeFn = func() {
			if err := db.Close(); err != nil {
				slog.Error("ошибка при закрытии БД", "err", err)
			}
		}

	case "mongo":
		mongoClient, err := config.SetupMongo(&cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		store = repository.NewMongoTokenRepository(mongoClient.Database, cfg.Mongo.Collection)
		closeFn = func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoClient.Close(closeCtx); err != nil {
				slog.Error("ошибка при закрытии MongoDB", "err", err)
			}
		}

	default:
		return nil, nil, fmt.Errorf("неизвестный драйвер хранилища токенов: %s", cfg.TokenStore.Driver)
	}

	if cfg.TokenStore.EncryptionKey != "" {
		cipher, err := security.NewTokenCipher(cfg.TokenStore.EncryptionKey)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		store = repository.NewEncryptedTokenRepository(store, cipher)
	}

	slog.Info("хранилище токенов готово", "driver", cfg.TokenStore.Driver, "encrypted", cfg.TokenStore.EncryptionKey != "")
	return store, closeFn, nil
}

// stateConfig : без STATE_SECRET ключ генерируется при старте, ссылки живут до перезапуска
func stateConfig(cfg *config.AppConfig) *config.StateConfig {
	stateCfg := cfg.State
	if stateCfg.Secret != "" {
		return &stateCfg
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Ошибка генерации ключа state: %v", err)
	}
	stateCfg.Secret = hex.EncodeToString(buf)
	slog.Warn("STATE_SECRET не задан, используется временный ключ")
	return &stateCfg
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("сервер запущен", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		slog.Info("получен сигнал остановки работы сервера", "signal", sig.String())
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		slog.Error("ошибка при остановке сервера", "err", err)
	} else {
		slog.Info("сервер успешно остановлен")
	}
}
