package cmd

import (
	"dsc/pkg/dsc"
	"dsc/pkg/number"
	"dsc/worker/priceoracle"

	"github.com/fox-one/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price <symbol> [amount]",
	Short: "print the usd value of a collateral amount",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithContext(cmd.Context(), logrus.NewEntry(logrus.StandardLogger()))

		database := provideDatabase()
		defer database.Close()

		a, err := provideApp(ctx, database, prometheus.NewRegistry())
		if err != nil {
			cmd.PrintErrln("provide app error:", err)
			return
		}

		pullPrices(cmd, a)

		amount := dsc.Precision.Clone()
		if len(args) > 1 {
			if amount, err = number.ParseWei(args[1]); err != nil {
				cmd.PrintErrln("parse amount error:", err)
				return
			}
		}

		symbol := args[0]
		usd, err := a.engine.GetUsdValue(ctx, symbol, amount)
		if err != nil {
			cmd.PrintErrln("usd value error:", err)
			return
		}

		cmd.Printf("%s %s = %s USD\n", number.FromWei(amount), symbol, number.FromWei(usd))
	},
}

// pullPrices update the feeds once from the price endpoint, failed pulls keep the configured price
func pullPrices(cmd *cobra.Command, a *app) {
	if cfg.PriceOracle.EndPoint == "" {
		return
	}

	w, err := priceoracle.New(cmd.Context(), cfg.PriceOracle.Refresh, provideTickerService(), a.priceFeeds())
	if err != nil {
		cmd.PrintErrln("price worker error:", err)
		return
	}

	_ = w.Refresh(cmd.Context())
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
