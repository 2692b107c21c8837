package main

import (
	"context"
	"log/slog"
	"os"

	catalogapp "github.com/dwikikusuma/shoping-checkout/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/shoping-checkout/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/shoping-checkout/internal/checkout/app"
	paymentapp "github.com/dwikikusuma/shoping-checkout/internal/payment/app"
	"github.com/dwikikusuma/shoping-checkout/internal/shell"

	"github.com/dwikikusuma/shoping-checkout/pkg/config"
	"github.com/dwikikusuma/shoping-checkout/pkg/logger"
	"github.com/dwikikusuma/shoping-checkout/pkg/metrics"
	"github.com/dwikikusuma/shoping-checkout/pkg/shutdown"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "shop",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Writer:  os.Stderr,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cancel, cfg, log); err != nil {
		log.Error("shop stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc, cfg config.Config, log *slog.Logger) error {
	// Catalog
	catalogSvc := catalogapp.NewService(catalogmem.NewProductRepo())
	if err := catalogSvc.SeedProducts(ctx, catalogapp.DemoCatalog); err != nil {
		return err
	}
	products, err := catalogSvc.ListProducts(ctx)
	if err != nil {
		return err
	}

	// Checkout
	reg := prometheus.NewRegistry()
	term := shell.NewTerminal(os.Stdout, cfg.Color, cfg.ProcessingDelay)
	checkoutSvc := checkoutapp.NewService(term, metrics.NewCheckoutMetrics(reg), log)

	payments := paymentapp.NewFactory(paymentapp.Options{
		InstantTransferBalance: cfg.InstantTransferBalance,
		CreditLineLimit:        cfg.CreditLineLimit,
	})

	sh := shell.New(shell.Deps{
		In:       os.Stdin,
		Terminal: term,
		Products: products,
		Checkout: checkoutSvc,
		Payments: payments,
		Log:      log,
	})

	log.Info("session started", slog.Int("products", len(products)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return sh.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		if cause := context.Cause(ctx); cause != nil && cause != context.Canceled {
			log.Info("shutdown requested", slog.Any("cause", cause))
		}
		return nil
	})

	err = g.Wait()

	summary, sumErr := metrics.Summary(reg)
	if sumErr != nil {
		log.Warn("metrics summary failed", slog.Any("err", sumErr))
	}
	log.Info("session finished",
		slog.Float64("approved", summary[metrics.OutcomeApproved]),
		slog.Float64("declined", summary[metrics.OutcomeDeclined]),
		slog.Float64("empty_cart", summary[metrics.OutcomeEmptyCart]),
	)
	return err
}
