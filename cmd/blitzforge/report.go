package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type benchmarkRecord struct {
	algorithm    string
	hashesPerSec float64
	found        bool
}

// newReportCmd ports original_source/src/cli/commands.rs's generate_report:
// read a benchmark CSV and print median/peak throughput and success rate
// per algorithm.
func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a benchmark CSV by algorithm",
		RunE:  runReport,
	}

	cmd.Flags().StringP("csv", "c", "", "Benchmark CSV produced by `run --log`")
	cmd.MarkFlagRequired("csv")
	viper.BindPFlags(cmd.Flags())

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	path := viper.GetString("csv")
	fmt.Printf("Generating report from: %s\n", path)

	records, err := readBenchmarkCSV(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No benchmark data found")
		return nil
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("   Total runs: %d\n", len(records))

	byAlgo := make(map[string][]benchmarkRecord)
	var order []string
	for _, r := range records {
		if _, seen := byAlgo[r.algorithm]; !seen {
			order = append(order, r.algorithm)
		}
		byAlgo[r.algorithm] = append(byAlgo[r.algorithm], r)
	}
	sort.Strings(order)

	fmt.Printf("\nPerformance by algorithm:\n")
	for _, algo := range order {
		group := byAlgo[algo]

		throughputs := make([]float64, len(group))
		found := 0
		for i, r := range group {
			throughputs[i] = r.hashesPerSec
			if r.found {
				found++
			}
		}

		fmt.Printf("\n   %s:\n", algo)
		fmt.Printf("      Runs:          %d\n", len(group))
		fmt.Printf("      Median H/s:    %s\n", formatHashesPerSec(median(throughputs)))
		fmt.Printf("      Peak H/s:      %s\n", formatHashesPerSec(peak(throughputs)))
		fmt.Printf("      Success rate:  %d/%d\n", found, len(group))
	}

	return nil
}

func readBenchmarkCSV(path string) ([]benchmarkRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing benchmark csv %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	records := make([]benchmarkRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		hps, _ := strconv.ParseFloat(row[col["hashes_per_s"]], 64)
		found, _ := strconv.ParseBool(row[col["found"]])
		records = append(records, benchmarkRecord{
			algorithm:    row[col["algorithm"]],
			hashesPerSec: hps,
			found:        found,
		})
	}
	return records, nil
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func peak(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func formatHashesPerSec(h float64) string {
	switch {
	case h >= 1_000_000_000:
		return fmt.Sprintf("%.2f GH/s", h/1_000_000_000)
	case h >= 1_000_000:
		return fmt.Sprintf("%.2f MH/s", h/1_000_000)
	case h >= 1_000:
		return fmt.Sprintf("%.2f KH/s", h/1_000)
	default:
		return fmt.Sprintf("%.0f H/s", h)
	}
}
