package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/clock"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/config"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/migration"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mongodb"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/observability"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/redis"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/report"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/scheduler"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/server"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/pkg/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "backoffice",
		Short:   "Orders tracking back-office",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newSchedulerCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare database schema and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the back-office API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newSchedulerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scheduler",
		Short: "Run background housekeeping workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			runScheduler()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations, then the API server and scheduler together",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			runMonolith()
			return nil
		},
	}
}

func coreModules() fx.Option {
	return fx.Options(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		mongodb.Module,
		db.Module,
		clock.Module,
		settings.Module,
		order.Module,
		customer.Module,
		account.Module,
		mergegroup.Module,
		upload.Module,
	)
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		mongodb.Module,
		db.Module,
		migration.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		coreModules(),
		redis.Module,
		report.Module,
		server.Module,
	)
	app.Run()
}

func runScheduler() {
	app := fx.New(
		coreModules(),
		redis.Module,
		report.Module,
		scheduler.Module,
		fx.Invoke(startScheduler),
	)
	app.Run()
}

func runMonolith() {
	app := fx.New(
		coreModules(),
		redis.Module,
		report.Module,
		server.Module,
		scheduler.Module,
		fx.Invoke(startScheduler),
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go s.RunForever(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
