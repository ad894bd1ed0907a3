package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dsc/core"
	"dsc/handler"
	"dsc/handler/hc"
	"dsc/worker/monitor"
	"dsc/worker/priceoracle"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run dsc api server and workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		ctx = logger.WithContext(ctx, logrus.NewEntry(logrus.StandardLogger()))

		database := provideDatabase()
		defer database.Close()

		registry := prometheus.NewRegistry()
		a, err := provideApp(ctx, database, registry)
		if err != nil {
			logrus.WithError(err).Fatal("provide app")
		}

		prices, err := priceoracle.New(ctx, cfg.PriceOracle.Refresh, provideTickerService(), a.priceFeeds())
		if err != nil {
			logrus.WithError(err).Fatal("price worker")
		}

		watcher, err := monitor.New(ctx, cfg.Monitor.Spec, a.engine, a.metrics.UnhealthyAccounts)
		if err != nil {
			logrus.WithError(err).Fatal("monitor worker")
		}

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version, pricesFresh(a.engine)))
		}

		{
			//metrics
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		}

		{
			//restful api
			svr := handler.New(a.engine, watcher, a.metrics, a.faucet())
			mux.Mount("/api", svr.HandleRestAPI())
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return prices.Serve(ctx)
		})

		g.Go(func() error {
			return watcher.Serve(ctx)
		})

		g.Go(func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			return nil
		})

		g.Go(func() error {
			logrus.Infoln("serve at", addr)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}

			return nil
		})

		if err := g.Wait(); err != nil {
			logrus.WithError(err).Fatal("server aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
}

// pricesFresh fails while any collateral price is stale or invalid
func pricesFresh(engine core.IEngine) hc.Check {
	one := uint256.NewInt(1)
	return func(ctx context.Context) error {
		for _, symbol := range engine.GetCollateralTokens() {
			if _, err := engine.GetUsdValue(ctx, symbol, one); err != nil {
				return fmt.Errorf("%s: %w", symbol, err)
			}
		}

		return nil
	}
}
