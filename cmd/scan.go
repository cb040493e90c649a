package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/filingscan/internal/config"
	"github.com/sells-group/filingscan/internal/model"
	"github.com/sells-group/filingscan/internal/ocr"
	"github.com/sells-group/filingscan/internal/scan"
)

var (
	scanTop         int
	scanConcurrency int
	scanJSON        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <pdf>",
	Short: "Find the largest numbers in a PDF filing",
	Long:  "Extracts per-page text from the PDF and reports the largest number under both interpretations: the largest raw literal, and the largest value after applying ambient and inline magnitude scaling.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		start := time.Now()

		top := scanTop
		if !cmd.Flags().Changed("top") && cfg.Scan.Top > 0 {
			top = cfg.Scan.Top
		}
		concurrency := scanConcurrency
		if !cmd.Flags().Changed("concurrency") && cfg.Scan.Concurrency > 0 {
			concurrency = cfg.Scan.Concurrency
		}

		extractor, err := ocr.NewExtractor(cfg.OCR)
		if err != nil {
			return err
		}

		pages, err := ocr.ExtractPages(ctx, extractor, args[0])
		if err != nil {
			return eris.Wrap(err, "scan: extract pages")
		}

		result, err := scan.Pages(ctx, pages, concurrency)
		if err != nil {
			return err
		}

		if scanJSON {
			if err := writeScanJSON(os.Stdout, result, top); err != nil {
				return err
			}
		} else {
			formatSummary(os.Stdout, result)
			formatBaseTable(os.Stdout, scan.TopBase(result.Base, top), top)
			formatContextTable(os.Stdout, scan.TopContextual(result.Pages, top), top)
		}

		zap.L().Info("scan complete",
			zap.String("pdf", args[0]),
			zap.Int("pages", result.PageCount),
			zap.Int("base_numbers", len(result.Base)),
			zap.Int("contextual_records", result.TotalRecords()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanTop, "top", config.DefaultScanTop, "number of rows in the top-N tables")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", config.DefaultScanConcurrency, "pages processed in parallel")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit machine-readable JSON instead of tables")
	rootCmd.AddCommand(scanCmd)
}

// numfmt renders grouped-digit numbers ("1,234,567.89") for display.
var numfmt = message.NewPrinter(language.English)

// formatSummary writes the largest number found under each interpretation.
func formatSummary(out io.Writer, result *model.ScanResult) {
	if base, ok := scan.LargestBase(result.Base); ok {
		_, _ = numfmt.Fprintf(out, "Largest number (base): %.2f on page %d\n", base.Value, base.Page)
	} else {
		_, _ = fmt.Fprintln(out, "No numbers found using base extraction.")
	}

	if rec, ok := scan.LargestContextual(result.Pages); ok {
		_, _ = numfmt.Fprintf(out, "Largest number (contextual): %.2f (original %.2f) on page %d\n",
			rec.Scaled, rec.Original, rec.Page)
	} else {
		_, _ = fmt.Fprintln(out, "No numbers found using contextual extraction.")
	}
}

// formatBaseTable writes the top-N base numbers as a table.
func formatBaseTable(out io.Writer, rows []model.BaseNumber, n int) {
	_, _ = fmt.Fprintf(out, "\nBase results (top %d largest numbers):\n", n)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NUMBER\tPAGE")
	_, _ = fmt.Fprintln(w, "------\t----")
	for _, r := range rows {
		_, _ = numfmt.Fprintf(w, "%.2f\t%d\n", r.Value, r.Page)
	}
	_ = w.Flush()
}

// formatContextTable writes the top-N contextual records as a table.
func formatContextTable(out io.Writer, rows []model.NumberRecord, n int) {
	_, _ = fmt.Fprintf(out, "\nContextual results (top %d largest numbers):\n", n)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PAGE\tORIGINAL\tSCALED\tSCALE WORD\tPOSITION")
	_, _ = fmt.Fprintln(w, "----\t--------\t------\t----------\t--------")
	for _, r := range rows {
		_, _ = numfmt.Fprintf(w, "%d\t%.2f\t%.2f\t%s\t%d\n",
			r.Page, r.Original, r.Scaled, r.ScaleWord, r.Position)
	}
	_ = w.Flush()
}

// scanReport is the JSON envelope emitted by --json.
type scanReport struct {
	LargestBase       *model.BaseNumber    `json:"largest_base,omitempty"`
	LargestContextual *model.NumberRecord  `json:"largest_contextual,omitempty"`
	TopBase           []model.BaseNumber   `json:"top_base"`
	TopContextual     []model.NumberRecord `json:"top_contextual"`
	Pages             int                  `json:"pages"`
}

// writeScanJSON writes the scan result as indented JSON.
func writeScanJSON(out io.Writer, result *model.ScanResult, top int) error {
	report := scanReport{
		TopBase:       scan.TopBase(result.Base, top),
		TopContextual: scan.TopContextual(result.Pages, top),
		Pages:         result.PageCount,
	}
	if base, ok := scan.LargestBase(result.Base); ok {
		report.LargestBase = &base
	}
	if rec, ok := scan.LargestContextual(result.Pages); ok {
		report.LargestContextual = &rec
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return eris.Wrap(err, "scan: encode report")
	}
	return nil
}
