package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"

	cartapp "github.com/samudrapos/kasir-service/internal/cart/application"
	catalogapp "github.com/samudrapos/kasir-service/internal/catalog/application"
	"github.com/samudrapos/kasir-service/internal/catalog/infrastructure/flatfile"
	catalogsheets "github.com/samudrapos/kasir-service/internal/catalog/infrastructure/sheets"
	"github.com/samudrapos/kasir-service/internal/catalog/infrastructure/static"
	checkoutapp "github.com/samudrapos/kasir-service/internal/checkout/application"
	checkoutsheets "github.com/samudrapos/kasir-service/internal/checkout/infrastructure/sheets"
	"github.com/samudrapos/kasir-service/internal/config"
	poshttp "github.com/samudrapos/kasir-service/internal/http"
	"github.com/samudrapos/kasir-service/pkg/logging"
	"github.com/samudrapos/kasir-service/pkg/shutdown"
)

func main() {
	app := &cli.App{
		Name:  "kasir-service",
		Usage: "point-of-sale backend: catalog, cart, and transaction recording",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "http-addr", Usage: "listen address, overrides KASIR_HTTP_ADDR"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	bootLog := logging.New("info")
	cfg := config.Load(bootLog)
	if addr := c.String("http-addr"); addr != "" {
		cfg.HTTPAddr = addr
	}
	log := logging.New(cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	loader := catalogapp.NewLoader(log, buildSources(cfg))
	loader.Load(ctx)

	cartSvc := cartapp.NewService(log, loader, cfg.TaxRate)

	var recorder checkoutapp.Recorder
	if cfg.EndpointURL != "" {
		recorder = checkoutsheets.NewRecorder(cfg.EndpointURL, cfg.FinanceSheetID, cfg.APIToken)
	}
	submitter := checkoutapp.NewSubmitter(log, cartSvc, recorder)

	handler := poshttp.NewHandler(log, loader, cartSvc, submitter)

	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("kasir-service shutdown complete")
	return nil
}

// buildSources assembles the catalog source chain in precedence order. The
// sheets source joins only when both the sheet id and the endpoint are
// configured; the built-in table always terminates the chain.
func buildSources(cfg config.Config) []catalogapp.Source {
	var sources []catalogapp.Source
	if cfg.SheetID != "" && cfg.EndpointURL != "" {
		sources = append(sources, catalogsheets.NewClient(cfg.EndpointURL, cfg.SheetID, cfg.APIToken))
	}
	if cfg.CatalogURL != "" {
		sources = append(sources, flatfile.NewRemoteSource(cfg.CatalogURL))
	}
	sources = append(sources,
		flatfile.NewLocalSource(cfg.CatalogFile),
		static.NewSource(),
	)
	return sources
}
