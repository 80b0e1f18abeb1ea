package commands

import (
	"os"

	"mir4scope-backend/lib/serviceutil"
	"mir4scope-backend/lib/sqliteutil"
	"mir4scope-backend/services/nftscope/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statusDb *string

func init() {
	statusDb = statusCmd.Flags().String("db", "nftscope.db", "The database to report on.")
	rootCmd.AddCommand(statusCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var statusCmd = &cobra.Command{
	Use:   "status [--db <path/to/output.db>]",
	Short: "Reports row counts for a crawl database.",
	Run: func(cmd *cobra.Command, args []string) {
		out, err := sqliteutil.OpenDB(db.Schema, *statusDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		qry := db.New(out)
		ctx := cmd.Context()

		counts := []struct {
			name  string
			count func() (int64, error)
		}{
			{"characters", func() (int64, error) { return qry.CountCharacters(ctx) }},
			{"inventories", func() (int64, error) { return qry.CountInventories(ctx) }},
			{"successions", func() (int64, error) { return qry.CountSuccessions(ctx) }},
			{"spirits", func() (int64, error) { return qry.CountSpirits(ctx) }},
			{"magic orbs", func() (int64, error) { return qry.CountMagicOrbs(ctx) }},
			{"magic stones", func() (int64, error) { return qry.CountMagicStones(ctx) }},
			{"mystical pieces", func() (int64, error) { return qry.CountMysticalPieces(ctx) }},
		}

		t := newTable()
		t.AppendHeader(table.Row{"Table", "Rows"})
		for _, c := range counts {
			n, err := c.count()
			if err != nil {
				serviceutil.Fatal("failed to count rows", err)
			}
			t.AppendRow(table.Row{c.name, n})
		}
		t.Render()
	},
}
