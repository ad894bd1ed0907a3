package cmd

import (
	"encoding/json"

	"dsc/handler/views"
	"dsc/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account <user>",
	Short: "print the positions and health factor of an account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithContext(cmd.Context(), logrus.NewEntry(logrus.StandardLogger()))

		database := provideDatabase()
		defer database.Close()

		a, err := provideApp(ctx, database, prometheus.NewRegistry())
		if err != nil {
			cmd.PrintErrln("provide app error:", err)
			return
		}

		if refresh, _ := cmd.Flags().GetBool("refresh"); refresh {
			pullPrices(cmd, a)
		}

		user := args[0]
		info, err := a.engine.Account(ctx, user)
		if err != nil {
			cmd.PrintErrln("account error:", err)
			return
		}

		view := views.AccountView(info, number.FromWei(a.engine.GetMinHealthFactor()))
		for _, symbol := range a.engine.GetCollateralTokens() {
			if amount := a.engine.GetCollateralBalanceOfUser(ctx, user, symbol); !amount.IsZero() {
				view.Collaterals = append(view.Collaterals, &views.CollateralAmount{
					Symbol: symbol,
					Amount: number.FromWei(amount),
				})
			}
		}

		data, _ := json.MarshalIndent(view, "", "  ")
		cmd.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.Flags().Bool("refresh", true, "pull fresh prices from the price endpoint first")
}
