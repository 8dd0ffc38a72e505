// cmd/shopctl/main.go
// CLI offline: hitung rollup/durasi dari file JSON entri produksi tanpa DB
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	hh "shopfloor-tracker/internal/handlers/http"
	"shopfloor-tracker/internal/logging"
	"shopfloor-tracker/internal/services"
	"shopfloor-tracker/internal/timecalc"
)

var BuildVersion = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	log := zap.NewNop()

	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Shop-floor production time calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = logging.MustNew("debug", "console")
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newSummaryCmd(func() *zap.Logger { return log }),
		newAddCmd(),
		newShiftCmd(),
		newVersionCmd(),
	)
	return root
}

func newSummaryCmd(logger func() *zap.Logger) *cobra.Command {
	var (
		file     string
		machine  string
		workMode bool
		asCSV    bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate production entries from a JSON file",
		Long: `Read a JSON array of production entries and print the dashboard summary.

  --machine    only entries of that machine (exact match)
  --work-mode  print decorated entries instead of the rollup
  --csv        print decorated entries as CSV export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := readRecords(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if machine != "" {
				recs = services.ApplyFilter(recs, services.Filter{Machine: machine})
			}
			log := logger()
			for _, is := range services.Reconcile(recs) {
				log.Warn("data issue", zap.String("id", is.ID), zap.String("field", is.Field), zap.String("reason", is.Reason))
			}

			out := cmd.OutOrStdout()
			switch {
			case asCSV:
				return hh.WriteCSV(out, timecalc.DecorateRecords(recs))
			case workMode:
				return writeJSON(out, timecalc.AggregateMachineHours(recs, true).Records)
			default:
				return writeJSON(out, services.BuildDashboard(recs, services.Filter{}))
			}
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file of entries (- for stdin)")
	cmd.Flags().StringVarP(&machine, "machine", "m", "", "Filter by machine name")
	cmd.Flags().BoolVar(&workMode, "work-mode", false, "Print decorated entries")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Print decorated entries as CSV")
	return cmd
}

func newAddCmd() *cobra.Command {
	var display bool
	cmd := &cobra.Command{
		Use:   "add <HH:MM:SS> <HH:MM:SS> [more...]",
		Short: "Add HH:MM:SS durations",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := timecalc.AddDurations(args[0], args[1], args[2:]...)
			if display {
				sum = timecalc.FormatDurationDisplay(sum)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&display, "display", false, `Print as "Xhr Ymins Zsec"`)
	return cmd
}

func newShiftCmd() *cobra.Command {
	var idle string
	cmd := &cobra.Command{
		Use:   "shift <start> <end>",
		Short: "Elapsed time between two AM/PM wall-clock times",
		Example: `  shopctl shift 08:00:PM 08:00:AM
  shopctl shift 08:00:AM 04:30:PM --idle 00:30:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, ok := timecalc.ElapsedShiftDuration(args[0], args[1])
			if !ok {
				return fmt.Errorf("start and end must carry an AM/PM suffix (got %q, %q)", args[0], args[1])
			}
			if idle != "" {
				span = timecalc.SubtractDurations(span, idle)
			}
			fmt.Fprintln(cmd.OutOrStdout(), span)
			return nil
		},
	}
	cmd.Flags().StringVar(&idle, "idle", "", "Idle time to subtract (HH:MM:SS)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "shopctl", BuildVersion)
		},
	}
}

// readRecords menerima array JSON langsung atau objek {"records": [...]}.
func readRecords(stdin io.Reader, file string) ([]timecalc.Record, error) {
	var (
		b   []byte
		err error
	)
	if file == "" || file == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var raws []timecalc.RawRecord
	if strings.HasPrefix(strings.TrimSpace(string(b)), "{") {
		var wrap struct {
			Records []timecalc.RawRecord `json:"records"`
		}
		err = json.Unmarshal(b, &wrap)
		raws = wrap.Records
	} else {
		err = json.Unmarshal(b, &raws)
	}
	if err != nil {
		return nil, fmt.Errorf("parse entries: %w", err)
	}
	return timecalc.NormalizeAll(raws), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
