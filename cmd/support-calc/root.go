package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpilink/support-calculator/internal/calculation"
	"github.com/cpilink/support-calculator/internal/cpi"
)

var (
	dataPath string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "support-calc",
	Short: "CPI-linked support payment calculator",
	Long: `support-calc re-indexes a base support amount against the consumer
price index, simulates the month-by-month update timeline and reports
the amount currently in force.

Index data comes from the CBS price index API by default; pass --data
to calculate offline from a CSV series instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "CSV index series for offline calculation (year,month,value,base)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exampleCmd)
}

// newQuoteProvider builds the configured quote source: a CSV series when
// --data is given, otherwise the CBS API behind a TTL cache.
func newQuoteProvider() (calculation.QuoteProvider, error) {
	if dataPath != "" {
		return cpi.LoadSeriesFromCSV(dataPath)
	}
	return cpi.NewCachingProvider(cpi.NewCBSClient(), cpi.DefaultQuoteTTL), nil
}

// stdLogger adapts the standard library logger to the engine's interface.
type stdLogger struct {
	l *log.Logger
}

func newStdLogger() stdLogger {
	return stdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s stdLogger) Debugf(format string, args ...interface{}) { s.l.Printf("DEBUG "+format, args...) }
func (s stdLogger) Infof(format string, args ...interface{})  { s.l.Printf("INFO "+format, args...) }
func (s stdLogger) Warnf(format string, args ...interface{})  { s.l.Printf("WARN "+format, args...) }
func (s stdLogger) Errorf(format string, args ...interface{}) { s.l.Printf("ERROR "+format, args...) }
