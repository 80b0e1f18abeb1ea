package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mir4scope-backend/lib/configutil"
	"mir4scope-backend/lib/restyutil"
	"mir4scope-backend/lib/scrapers/mir4"
	"mir4scope-backend/lib/serviceutil"
	"mir4scope-backend/lib/sqliteutil"
	"mir4scope-backend/services/nftscope"
	"mir4scope-backend/services/nftscope/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	// defaults to the public marketplace API
	BaseUrl     string `json:"base_url"`
	InsecureTLS bool   `json:"insecure_tls"`
	// path to a trade table produced by the `trade-table` command
	TradeTable string `json:"trade_table"`
}

var crawlDb *string
var crawlFirst *int
var crawlLast *int
var crawlWorkers *int
var crawlPrefixStop *bool
var crawlDebugHttp *bool
var crawlTimeout *time.Duration

func init() {
	crawlDb = crawlCmd.Flags().String("db", "nftscope.db", "The database to write crawl results to.")
	crawlFirst = crawlCmd.Flags().Int("first", 1, "The first catalog page to crawl.")
	crawlLast = crawlCmd.Flags().Int("last", 1, "The last catalog page to crawl.")
	crawlWorkers = crawlCmd.Flags().Int("workers", 4, "How many listings to aggregate at once.")
	crawlPrefixStop = crawlCmd.Flags().Bool("prefix-stop", false, "Stop at the first already-known listing instead of skipping it.")
	crawlDebugHttp = crawlCmd.Flags().Bool("debug-http", false, "Dump every http exchange to .dev/resty/crawl.")
	crawlTimeout = crawlCmd.Flags().Duration("timeout", 0, "Deadline for the whole run, 0 means none.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [--db <path/to/output.db>] [--first <page>] [--last <page>]",
	Short: "Crawls the sale catalog and aggregates every new character listing.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		if cfg.TradeTable == "" {
			cfg.TradeTable = "trade_table.json"
		}

		trade, err := mir4.LoadTradeTable(cfg.TradeTable)
		if err != nil {
			serviceutil.Fatal("failed to load trade table", err)
		}

		client := mir4.NewClient(mir4.ClientOptions{
			BaseUrl:     cfg.BaseUrl,
			InsecureTLS: cfg.InsecureTLS,
		})
		if *crawlDebugHttp {
			client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/crawl"))
		}

		out, err := sqliteutil.OpenDB(db.Schema, *crawlDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		slog.Info("starting crawl",
			"first", *crawlFirst, "last", *crawlLast, "workers", *crawlWorkers)

		ctx := cmd.Context()
		if *crawlTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, *crawlTimeout)
			defer cancel()
		}

		crawler := nftscope.NewCrawler(client, out, trade, nftscope.Options{
			FirstPage:   *crawlFirst,
			LastPage:    *crawlLast,
			Concurrency: *crawlWorkers,
			PrefixStop:  *crawlPrefixStop,
		})
		report, err := crawler.Run(ctx)
		if err != nil {
			serviceutil.Fatal("crawl aborted", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Pages", "Entries", "Persisted", "Skipped", "Failed", "Duration"})
		t.AppendRow(table.Row{
			report.Pages,
			report.Entries,
			report.Persisted,
			report.Skipped,
			report.Failed,
			fmt.Sprintf("%.1fs", report.Duration.Round(time.Millisecond*100).Seconds()),
		})
		t.Render()
	},
}
