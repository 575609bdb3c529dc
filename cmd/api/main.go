package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valyala/fasthttp"

	"marvel-backend/internal/cache"
	"marvel-backend/internal/config"
	"marvel-backend/internal/handlers"
	"marvel-backend/internal/repository"
	"marvel-backend/internal/services"
	"marvel-backend/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.LogError("Main", "Ошибка чтения конфигурации", err)
		fmt.Fprintln(os.Stderr, config.Usage())
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		users services.UserStore
		likes services.LikeStore
	)

	switch cfg.Storage {
	case config.StorageMemory:
		utils.LogWarning("Main", "STORAGE=memory: данные не переживут перезапуск")
		users = repository.NewInMemoryUserRepository()
		likes = repository.NewInMemoryLikeRepository()
	default:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			utils.LogError("Main", "Не удалось подключиться к базе данных", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			utils.LogError("Main", "База данных недоступна", err)
			os.Exit(1)
		}

		if err := repository.Migrate(pool); err != nil {
			utils.LogError("Main", "Ошибка применения миграций", err)
			os.Exit(1)
		}
		utils.LogSuccess("Main", "Миграции применены")

		users = repository.NewUserRepository(pool)
		likes = repository.NewLikeRepository(pool)
	}

	upstream := &fasthttp.Client{
		Name:                "marvel-backend",
		ReadTimeout:         cfg.Timeout,
		WriteTimeout:        cfg.Timeout,
		MaxIdleConnDuration: time.Minute,
	}
	catalogCfg := services.CatalogConfig{
		BaseURL:  cfg.MarvelAPIURL,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
		CacheTTL: cfg.CatalogCacheTTL,
	}

	catalog := services.NewCatalogService(upstream, catalogCfg)
	if cfg.CacheEnabled() {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			utils.LogWarning("Main", "Redis недоступен, кеш каталога отключён: %v", err)
		} else {
			catalog = services.NewCatalogServiceWithCache(upstream, catalogCfg, redisCache)
		}
	}

	router := handlers.NewRouter(
		handlers.NewAuthHandler(services.NewAuthService(users)),
		handlers.NewLikeHandler(services.NewLikeService(likes)),
		handlers.NewCatalogHandler(catalog),
	)

	server := &fasthttp.Server{
		Handler:            router,
		Name:               "marvel-backend",
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		MaxRequestBodySize: 1 << 20,
	}

	go func() {
		utils.LogSuccess("Main", "Server has started🔥🔥🔥🔥")
		utils.LogInfo("Main", "Слушаем %s", cfg.Addr())
		if err := server.ListenAndServe(cfg.Addr()); err != nil {
			utils.LogError("Main", "Ошибка сервера", err)
			os.Exit(1)
		}
	}()

	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChannel

	utils.LogInfo("Main", "Остановка сервера...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		utils.LogError("Main", "Сервер остановлен принудительно", err)
	}
	utils.LogInfo("Main", "Сервер остановлен")
}
