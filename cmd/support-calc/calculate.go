package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cpilink/support-calculator/internal/calculation"
	"github.com/cpilink/support-calculator/internal/config"
	"github.com/cpilink/support-calculator/internal/domain"
	"github.com/cpilink/support-calculator/internal/output"
)

var (
	inputPath  string
	baseAmount string
	baseYear   int
	baseMonth  int
	billingDay int
	frequency  int
	factor     string
	asOfDate   string
	formatName string
	outputPath string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run an indexation calculation",
	Long: `Calculate the current re-indexed amount and the full update timeline.

The request comes either from a YAML file (--input) or from the
individual flags. Flag values override nothing: when --input is given
the flags are ignored.`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML calculation request file")
	calculateCmd.Flags().StringVar(&baseAmount, "amount", "", "base amount before indexation")
	calculateCmd.Flags().IntVar(&baseYear, "base-year", 0, "year the base amount took effect")
	calculateCmd.Flags().IntVar(&baseMonth, "base-month", 0, "month the base amount took effect (1-12)")
	calculateCmd.Flags().IntVar(&billingDay, "billing-day", 1, "day of month used for billing dates")
	calculateCmd.Flags().IntVar(&frequency, "frequency", 3, "months between official updates (1, 3, 6 or 12)")
	calculateCmd.Flags().StringVar(&factor, "factor", "1.0", "annual linkage factor")
	calculateCmd.Flags().StringVar(&asOfDate, "date", "", "calculation date, YYYY-MM-DD (default today)")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	calculateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	request, err := buildRequest()
	if err != nil {
		return err
	}

	today := time.Now()
	if asOfDate != "" {
		today, err = time.Parse("2006-01-02", asOfDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", asOfDate, err)
		}
	}

	provider, err := newQuoteProvider()
	if err != nil {
		return fmt.Errorf("failed to initialize index data source: %w", err)
	}

	engine := calculation.NewCalculationEngine(provider)
	if debug {
		engine.SetLogger(newStdLogger())
		engine.Debug = true
	}

	cfg := request.ToIndexationConfig()
	summary, err := engine.RunCalculation(cmd.Context(), &cfg, today)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(formatName)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", formatName, output.AvailableFormatterNames())
	}

	data, err := formatter.Format(summary)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", outputPath)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

func buildRequest() (*domain.CalculationRequest, error) {
	parser := config.NewInputParser()

	if inputPath != "" {
		return parser.LoadFromFile(inputPath)
	}

	if baseAmount == "" || baseYear == 0 || baseMonth == 0 {
		return nil, fmt.Errorf("either --input or all of --amount, --base-year and --base-month are required")
	}

	amount, err := decimal.NewFromString(baseAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid --amount %q: %w", baseAmount, err)
	}
	linkage, err := decimal.NewFromString(factor)
	if err != nil {
		return nil, fmt.Errorf("invalid --factor %q: %w", factor, err)
	}

	request := &domain.CalculationRequest{
		BaseAmount:            amount,
		BaseYear:              baseYear,
		BaseMonth:             baseMonth,
		BillingDay:            billingDay,
		UpdateFrequencyMonths: frequency,
		AnnualLinkageFactor:   linkage,
	}
	parser.ApplyDefaults(request)
	if err := parser.ValidateRequest(request); err != nil {
		return nil, err
	}
	return request, nil
}
