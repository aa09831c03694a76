package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/staffhub/internal/adapters/notify"
	"github.com/ogurasousui/staffhub/internal/adapters/repository/postgres"
	"github.com/ogurasousui/staffhub/internal/core/employee"
	"github.com/ogurasousui/staffhub/internal/core/project"
	"github.com/ogurasousui/staffhub/internal/core/team"
	"github.com/ogurasousui/staffhub/internal/core/watch"
	"github.com/ogurasousui/staffhub/internal/platform/config"
	pg "github.com/ogurasousui/staffhub/internal/platform/db/postgres"
	"github.com/ogurasousui/staffhub/internal/platform/logging"
	"github.com/ogurasousui/staffhub/internal/platform/server"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database pool", zap.Error(err))
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	hub := watch.NewHub()

	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	teamRepo := postgres.NewTeamMemberRepository(dbPool)

	employeeSvc := employee.NewService(employeeRepo, nil, txManager, hub)
	projectSvc := project.NewService(projectRepo, nil, txManager, hub)

	summaryWriter := employee.NewSummaryWriter(employeeRepo, nil)
	projectFinder := project.NewFinder(projectRepo)
	teamSvc := team.NewService(teamRepo, summaryWriter, projectFinder, nil, txManager, hub)

	if cfg.Notify.Enabled {
		bridge := notify.NewBridge(dbPool, hub, cfg.Notify.Channel, logger)
		go func() {
			if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("notify bridge stopped", zap.Error(err))
			}
		}()
	}

	grpcServer := server.New(cfg.Server.ListenAddr, employeeSvc, projectSvc, teamSvc,
		grpc.ChainUnaryInterceptor(logging.UnaryServerInterceptor(logger)),
		grpc.ChainStreamInterceptor(logging.StreamServerInterceptor(logger)),
	)

	logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}
