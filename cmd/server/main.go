package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/epc-inventory/internal/adapter/handler"
	"github.com/rl1809/epc-inventory/internal/adapter/handler/pb"
	remoteregistry "github.com/rl1809/epc-inventory/internal/adapter/registry"
	"github.com/rl1809/epc-inventory/internal/adapter/storage"
	"github.com/rl1809/epc-inventory/internal/config"
	"github.com/rl1809/epc-inventory/internal/core/service"
	"github.com/rl1809/epc-inventory/internal/port"
	"github.com/rl1809/epc-inventory/internal/scheduler"
	"github.com/rl1809/epc-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		baseLogger.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		baseLogger.Fatal("failed to ping mysql", zap.Error(err))
	}
	baseLogger.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		baseLogger.Fatal("failed to connect redis", zap.Error(err))
	}
	baseLogger.Info("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	// Select the registry lookup backend
	var registry port.RegistryLookup
	switch cfg.Registry.Mode {
	case config.RegistryModeRemote:
		registry = remoteregistry.NewRemoteRegistry(cfg.Registry.BaseURL, baseLogger.Named("registry.remote"))
		baseLogger.Info("using remote registry", zap.String("base_url", cfg.Registry.BaseURL))
	default:
		registry = service.NewStoreRegistry(mysqlAdapter, redisAdapter, baseLogger.Named("registry.store"))
		baseLogger.Info("using local store registry")
	}

	// Initialize services
	assetService := service.NewAssetService(mysqlAdapter, baseLogger.Named("svc.assets"))
	sessionService := service.NewSessionService(registry, mysqlAdapter, cfg.Workers.QueueSize, baseLogger.Named("svc.sessions"))

	// Start confirmation worker pool
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers.Count; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, sessionService.GetConfirmQueue(), mysqlAdapter, redisAdapter, baseLogger.Named("worker"))
		}(i)
	}
	baseLogger.Info("started confirmation workers", zap.Int("count", cfg.Workers.Count))

	// Start session sweeper
	sweeper := scheduler.NewSweeper(sessionService, cfg.Sessions.SweepSchedule, cfg.Sessions.IdleTTL, baseLogger.Named("sweeper"))
	if err := sweeper.Start(); err != nil {
		baseLogger.Fatal("failed to start sweeper", zap.Error(err))
	}
	defer sweeper.Stop()

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(sessionService)
	pb.RegisterScanServiceServer(grpcServer, grpcHandler)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		baseLogger.Fatal("failed to listen", zap.Error(err))
	}

	go func() {
		baseLogger.Info("gRPC server listening", zap.String("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			baseLogger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(assetService, sessionService, baseLogger.Named("handlers.http"))
	engine := handler.NewRouter(httpHandler, baseLogger.Named("router"))

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("HTTP server listening", zap.String("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			baseLogger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	baseLogger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	baseLogger.Info("gRPC server stopped")

	// Close confirm queue and wait for workers
	sessionService.Close()
	wg.Wait()
	baseLogger.Info("workers stopped")

	rdb.Close()
	db.Close()
	baseLogger.Info("connections closed")
}

// workerLoop drains confirmed counts: persist the count, then claim
// the counted EPCs so later sessions classify them as surplus. The
// session is gone by the time this runs; the count row is the durable
// artifact, so a failed save is logged loudly instead of retried.
func workerLoop(id int, queue <-chan service.Confirmation, db port.DatabaseRepository, cache port.CacheRepository, log *zap.Logger) {
	for conf := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := db.SaveTaskCount(ctx, conf.Count); err != nil {
			log.Error("CRITICAL failed to save task count",
				zap.Int("worker", id),
				zap.String("task_id", conf.Count.TaskID),
				zap.String("asset_id", conf.Count.AssetID),
				zap.Int("confirmed", conf.Count.ConfirmedCount),
				zap.Error(err))
			cancel()
			continue
		}

		holder := service.CountHolder(conf.Count.TaskID, conf.Count.AssetID)
		for _, epc := range conf.EPCs {
			claimed, err := cache.ClaimCounted(ctx, epc, holder)
			if err != nil {
				log.Error("failed to claim counted epc",
					zap.Int("worker", id),
					zap.String("epc", epc),
					zap.Error(err))
				continue
			}
			if !claimed {
				log.Warn("epc already claimed by another session",
					zap.Int("worker", id),
					zap.String("epc", epc))
			}
		}

		log.Info("task count saved",
			zap.Int("worker", id),
			zap.String("task_id", conf.Count.TaskID),
			zap.String("asset_id", conf.Count.AssetID),
			zap.Int("confirmed", conf.Count.ConfirmedCount))

		cancel()
	}
}
