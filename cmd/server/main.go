package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "dental-practice-api/api/practice/v1"
	"dental-practice-api/internal/config"
	gweb "dental-practice-api/internal/grpcweb"
	"dental-practice-api/internal/handler"
	"dental-practice-api/internal/logging"
	"dental-practice-api/internal/middleware"
	"dental-practice-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, closeData, err := provider(ctx, cfg, log)
	if err != nil {
		log.Fatal("data provider", zap.Error(err))
	}
	defer closeData()

	h := handler.New(data, cfg.Grid, log)

	// grpc server
	rl := middleware.NewRateLimiter(ctx, cfg.RateRPS, cfg.RateBurst)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.Logging(log),
			middleware.RateLimit(rl),
		),
	)
	pb.RegisterPracticeServiceServer(srv, h)

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	go func() {
		log.Info("grpc listening", zap.String("port", cfg.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			log.Error("grpc", zap.Error(err))
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.GRPCPort, log)
	if err != nil {
		log.Fatal("bridge", zap.Error(err))
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: bridge.Handler(),
	}
	go func() {
		log.Info("grpc-web listening", zap.String("port", cfg.WebPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdown(httpSrv, srv, shutdownTimeout, log)
}

type httpServer interface {
	Shutdown(ctx context.Context) error
}

type grpcServer interface {
	GracefulStop()
}

// shutdown drains the grpc-web bridge before the gRPC server, since bridged
// calls in flight still need it.
func shutdown(web httpServer, rpc grpcServer, timeout time.Duration, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := web.Shutdown(ctx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	rpc.GracefulStop()
}

// provider picks PostgreSQL when DATABASE_URL is set, the seed file otherwise.
func provider(ctx context.Context, cfg config.Config, log *zap.Logger) (handler.Provider, func(), error) {
	if cfg.DatabaseURL == "" {
		mem, err := store.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		log.Info("serving seed data", zap.String("file", cfg.SeedFile))
		return mem, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	log.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Warn("migration file not found, skipping", zap.Error(err))
	} else if _, err := pool.Exec(ctx, string(migration)); err != nil {
		log.Warn("migration failed", zap.Error(err))
	} else {
		log.Info("migration applied")
	}

	return store.New(pool), pool.Close, nil
}
