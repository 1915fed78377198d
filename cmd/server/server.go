package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-stats/internal/config"
	"github.com/KirkDiggler/rpg-stats/internal/handlers/stats/v1alpha1"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/owners"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/tracing"
	"github.com/KirkDiggler/rpg-stats/internal/redis"
	"github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

const serviceName = "rpg-stats"

var (
	grpcPort  int
	redisAddr string
	logLevel  string
	rulesFile string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the stats gRPC server. Settings come from STATS_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (STATS_GRPC_PORT)")
	serverCmd.Flags().StringVar(&rulesFile, "rules", "", "rule file seeded as the default rule set (STATS_RULES_FILE)")

	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address (STATS_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (STATS_LOG_LEVEL)")
}

// loadConfig reads the environment and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if rulesFile != "" {
		cfg.RulesFile = rulesFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openRuleSets connects to Redis and returns the rule set repository
func openRuleSets(ctx context.Context, cfg *config.Config) (rulesets.Repository, func(), error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		DialTimeout: 5 * time.Second,
		MaxRetries:  3,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, client); err != nil {
		cleanup()
		return nil, nil, err
	}

	repo, err := rulesets.NewRedis(&rulesets.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return repo, cleanup, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("failed to flush traces", "error", err)
		}
	}()

	repo, closeRedis, err := openRuleSets(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis()

	if cfg.RulesFile != "" {
		if err := seedRuleSet(ctx, repo, cfg.DefaultRuleset, cfg.RulesFile, logger); err != nil {
			return err
		}
	}

	ownerService, err := owners.NewOrchestrator(&owners.Config{
		RuleSetRepo:    repo,
		IDGenerator:    idgen.NewUUID("owner"),
		DefaultRuleset: cfg.DefaultRuleset,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create owner service: %w", err)
	}

	statsHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		OwnerService: ownerService,
	})
	if err != nil {
		return fmt.Errorf("failed to create stats handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterStatsServiceServer(srv, statsHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		gracefulStop(srv, 30*time.Second, logger)
		return nil
	})

	return g.Wait()
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			logger.Error("recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

func gracefulStop(srv *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// seedRuleSet stores the rules in path under name, replacing any stored copy
func seedRuleSet(ctx context.Context, repo rulesets.Repository, name, path string, logger *slog.Logger) error {
	raw, err := rules.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load rules from %s: %w", path, err)
	}

	out, err := repo.Put(ctx, &rulesets.PutInput{Name: name, Rules: raw})
	if err != nil {
		return fmt.Errorf("failed to seed rule set %q: %w", name, err)
	}

	for _, d := range out.Diagnostics {
		logger.Warn("rule diagnostic", "ruleset", name, "diagnostic", d.String())
	}
	logger.Info("seeded rule set", "ruleset", name, "path", path, "sections", len(raw))
	return nil
}
