package console

import (
	"fmt"
	"os"

	"log-replicator/application"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"
)

type ConsoleUI struct {
	bar *progressbar.ProgressBar
}

func NewConsoleUI() *ConsoleUI {
	return &ConsoleUI{}
}

func (c *ConsoleUI) Init(total int) {
	c.bar = progressbar.NewOptions(
		total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetDescription("[REPLICATING RECORDS]"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (c *ConsoleUI) Update(current int) {
	if c.bar != nil {
		c.bar.Set(current)
	}
}

// RenderReport prints the per-backend write counts after a replication
// pass.
func (c *ConsoleUI) RenderReport(result *application.ReplicateResult) {
	fmt.Printf("\n[REPLICATION COMPLETE] %d records processed:\n", result.Records)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Backend", "Writes", "Failures"})
	for _, outcome := range result.Outcomes {
		t.AppendRow(table.Row{outcome.Name, outcome.Writes, outcome.Failures})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderIngestReport prints the line counts after an ingestion pass.
func (c *ConsoleUI) RenderIngestReport(result *application.IngestResult) {
	fmt.Println("\n[INGESTION COMPLETE]")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Lines Read", "Records Parsed", "Lines Dropped"})
	t.AppendRow(table.Row{result.TotalLines, result.Parsed, result.Dropped})

	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *ConsoleUI) Close() {
	if c.bar != nil {
		c.bar.Finish()
	}
}
