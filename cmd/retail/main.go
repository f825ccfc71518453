package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tu-usuario/retail-shop/internal/application/admin"
	"github.com/tu-usuario/retail-shop/internal/application/auth"
	"github.com/tu-usuario/retail-shop/internal/application/manage"
	"github.com/tu-usuario/retail-shop/internal/application/shopping"
	"github.com/tu-usuario/retail-shop/internal/infrastructure/postgres"
	"github.com/tu-usuario/retail-shop/internal/interfaces/cli"
	"github.com/tu-usuario/retail-shop/pkg/config"
	"github.com/tu-usuario/retail-shop/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "retail <dbname> <port> <user>",
		Short: "Cliente interactivo de la tienda sobre PostgreSQL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], args[1], args[2])
		},
		SilenceUsage: true,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dbname, port, user string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if err := cfg.ApplyArgs(dbname, port, user); err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: getLogLevel(),
	})

	log.Info().
		Str("db", cfg.DB.DBName).
		Str("host", cfg.DB.Host).
		Int("port", cfg.DB.Port).
		Msg("conectando a la base de datos")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conectar a PostgreSQL: %w", err)
	}
	defer pool.Close()

	// Repositorios sobre el pool; los flujos transaccionales reciben sus
	// propios repos sobre la transacción vía TxRunner.
	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	updateRepo := postgres.NewProductUpdateRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	shopUC := shopping.NewShoppingUseCase(storeRepo, productRepo, reportRepo, txRunner)
	manageUC := manage.NewManageUseCase(storeRepo, productRepo, updateRepo, warehouseRepo, reportRepo, txRunner)
	adminUC := admin.NewAdminUseCase(userRepo, productRepo)

	app := cli.NewApp(
		cli.NewPrompter(os.Stdin, os.Stdout),
		cli.NewRenderer(os.Stdout),
		log,
		authUC,
		shopUC,
		manageUC,
		adminUC,
	)
	return app.Run(ctx)
}

func getLogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
