package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/industrylens/industrylens/internal/cli"
	"github.com/industrylens/industrylens/internal/engine"
	"github.com/industrylens/industrylens/internal/ingest"
	"github.com/industrylens/industrylens/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Classify companies from a CSV file",
		Long: `Classify every row of a CSV file.

The file must have a "name" column; optional columns (domain, year founded,
industry, locality, country, linkedin url) are combined into a description.
When an industry column is present, predictions are scored against it.

Examples:
  industrylens batch --input companies.csv
  industrylens batch --input companies.csv --mode llm --output results.csv
  industrylens batch --sample`,
		RunE: runBatch,
	}

	cmd.Flags().StringP("input", "i", "", "input CSV file")
	cmd.Flags().Bool("sample", false, "use the built-in sample dataset")
	cmd.Flags().StringP("mode", "m", "keyword", "classifier to use (keyword, llm)")
	cmd.Flags().StringP("output", "o", "", "write results to a CSV file instead of the terminal")

	_ = viper.BindPFlag("batch.mode", cmd.Flags().Lookup("mode"))

	return cmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	input, _ := cmd.Flags().GetString("input")
	useSample, _ := cmd.Flags().GetBool("sample")
	output, _ := cmd.Flags().GetString("output")

	mode, err := resolveMode(viper.GetString("batch.mode"))
	if err != nil {
		return err
	}

	var records []model.CompanyRecord
	switch {
	case useSample:
		records, err = ingest.SampleRecords()
	case input != "":
		records, err = ingest.ReadFile(input)
	default:
		return fmt.Errorf("either --input or --sample is required")
	}
	if err != nil {
		return err
	}

	eng, adapter, err := buildEngine(ctx, mode)
	if err != nil {
		return err
	}
	warnDegradedLLM(mode, adapter)

	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetDescription(fmt.Sprintf("Classifying (%s)", mode)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	predictions, err := eng.ClassifyRecords(ctx, mode, records, func(int) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	if output != "" {
		if writeErr := writeResultsCSV(output, predictions); writeErr != nil {
			return writeErr
		}
		fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Wrote %d results to %s", len(predictions), output)))
	} else {
		renderResults(predictions)
	}

	if failed := countErrors(predictions); failed > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%d of %d records could not be classified", failed, len(predictions))))
	}

	if report := engine.ComputeAccuracy(predictions); report.Eligible > 0 {
		fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
			"Accuracy against original labels: %.2f%% (%d of %d)",
			report.Accuracy, report.Matches, report.Eligible)))
	} else {
		fmt.Println(cli.SubtleStyle.Render("No records carried an original industry label; accuracy not computed."))
	}

	return nil
}

func countErrors(predictions []model.Prediction) int {
	var n int
	for _, p := range predictions {
		if (model.ClassificationResult{Label: p.Predicted}).IsError() {
			n++
		}
	}
	return n
}

func renderResults(predictions []model.Prediction) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, cli.HeaderStyle.Render("COMPANY")+"\t"+
		cli.HeaderStyle.Render("ORIGINAL")+"\t"+
		cli.HeaderStyle.Render("PREDICTED")+"\t"+
		cli.HeaderStyle.Render("CONFIDENCE"))

	for _, p := range predictions {
		predicted := p.Predicted
		if (model.ClassificationResult{Label: predicted}).IsError() {
			predicted = cli.ErrorStyle.Render(predicted)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", p.CompanyName, p.OriginalIndustry, predicted, p.Confidence)
	}
	_ = w.Flush()
}

func writeResultsCSV(path string, predictions []model.Prediction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"company name", "description", "original industry", "predicted industry", "confidence"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range predictions {
		row := []string{
			p.CompanyName,
			p.Description,
			p.OriginalIndustry,
			p.Predicted,
			fmt.Sprintf("%.2f", p.Confidence),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
