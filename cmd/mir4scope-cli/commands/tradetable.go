package commands

import (
	"encoding/json"
	"log/slog"
	"os"

	"mir4scope-backend/lib/scrapers/mir4"
	"mir4scope-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

var tradeTableOut *string

func init() {
	tradeTableOut = tradeTableCmd.Flags().String("out", "trade_table.json", "Where to write the trade table.")
	rootCmd.AddCommand(tradeTableCmd)
}

var tradeTableCmd = &cobra.Command{
	Use:   "trade-table <path/to/ITEM.json>",
	Short: "Builds a trade table out of a game client ITEM.json dump.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read item dump", err)
		}
		table, err := mir4.BuildTradeTable(raw)
		if err != nil {
			serviceutil.Fatal("failed to parse item dump", err)
		}

		encoded, err := json.Marshal(table)
		if err != nil {
			serviceutil.Fatal("failed to encode trade table", err)
		}
		err = os.WriteFile(*tradeTableOut, encoded, 0644)
		if err != nil {
			serviceutil.Fatal("failed to write trade table", err)
		}

		slog.Info("wrote trade table", "items", len(table), "out", *tradeTableOut)
	},
}
