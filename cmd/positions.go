package cmd

import (
	"encoding/json"

	"dsc/handler/views"

	"github.com/spf13/cobra"
)

var positionsCmd = &cobra.Command{
	Use:   "positions <user>",
	Short: "print the persisted positions of an account, no price needed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		positions, err := providePositionStore(database).FindByUser(cmd.Context(), args[0])
		if err != nil {
			cmd.PrintErrln("find positions error:", err)
			return
		}

		data, _ := json.MarshalIndent(views.PositionsView(positions), "", "  ")
		cmd.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}
