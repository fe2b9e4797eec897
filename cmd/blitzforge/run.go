package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blitzforge/blitzforge/internal/benchlog"
	"github.com/blitzforge/blitzforge/internal/candidate"
	"github.com/blitzforge/blitzforge/internal/cliui"
	"github.com/blitzforge/blitzforge/internal/engine"
	"github.com/blitzforge/blitzforge/internal/target"
)

const defaultCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// newRunCmd ports original_source/src/cli/commands.rs's run_cracking: load a
// targets manifest, build a generator for the requested strategy, and drive
// the engine, optionally repeating and logging each run to a benchmark CSV.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the cracking engine against a targets manifest",
		RunE:  runRun,
	}

	flags := cmd.Flags()
	flags.StringP("targets", "t", "", "Path to a targets manifest")
	flags.String("strategy", "dictionary", "Strategy: dictionary|mask|brute|hybrid")
	flags.String("wordlist", "", "Wordlist path (dictionary strategy)")
	flags.String("mask", "", "Mask pattern (mask strategy)")
	flags.String("charset", defaultCharset, "Character set (brute strategy)")
	flags.Int("min-len", 1, "Minimum candidate length (brute strategy)")
	flags.Int("max-len", 8, "Maximum candidate length (brute strategy)")
	flags.Int("workers", runtime.NumCPU(), "Worker goroutine count")
	flags.Int("batch-size", 10000, "Candidates per batch")
	flags.Int("repeat", 1, "Number of repeated runs")
	flags.String("log", "", "Append per-run results to this benchmark CSV")
	cmd.MarkFlagRequired("targets")
	viper.BindPFlags(flags)

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	targetsPath := viper.GetString("targets")
	strategy := viper.GetString("strategy")
	workers := viper.GetInt("workers")
	batchSize := viper.GetInt("batch-size")
	repeat := viper.GetInt("repeat")
	logPath := viper.GetString("log")

	targets, err := target.LoadManifest(targetsPath)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets found in %s", targetsPath)
	}

	var logger *benchlog.Logger
	if logPath != "" {
		logger, err = benchlog.Open(logPath)
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	cliui.PrintBanner(strategy, workers)
	fmt.Printf("Targets: %d | Batch size: %d | Repeats: %d\n\n", len(targets), batchSize, repeat)

	keyspace := "unknown"

	for run := 1; run <= repeat; run++ {
		if repeat > 1 {
			fmt.Printf("\nRun %d/%d\n", run, repeat)
		}

		gen, err := buildGenerator(strategy)
		if err != nil {
			return err
		}

		if est, known := gen.EstimatedSize(); known {
			keyspace = fmt.Sprintf("%d", est)
			fmt.Printf("Keyspace: %s\n", keyspace)
		}

		e, err := engine.New(targets, gen, workers, batchSize)
		if err != nil {
			return err
		}

		result, err := e.Run(cliui.PrintProgress)
		if err != nil {
			return err
		}

		for _, m := range result.Matches {
			cliui.PrintMatch(m.TargetID, m.Username, m.PasswordString())
		}
		cliui.PrintSummary(result, len(targets))

		if logger != nil {
			if err := logger.LogResult(result, targets, benchlog.RunContext{
				Strategy: strategy, Workers: workers, KeyspaceSize: keyspace,
			}); err != nil {
				return err
			}
		}
	}

	fmt.Println("\nAll runs completed.")
	return nil
}

func buildGenerator(strategy string) (candidate.Generator, error) {
	switch strategy {
	case "dictionary":
		wordlist := viper.GetString("wordlist")
		if wordlist == "" {
			return nil, &engine.ConfigError{Reason: "--wordlist is required for the dictionary strategy"}
		}
		return candidate.NewDictionaryGenerator(wordlist)

	case "mask":
		mask := viper.GetString("mask")
		if mask == "" {
			return nil, &engine.ConfigError{Reason: "--mask is required for the mask strategy"}
		}
		return candidate.NewMaskGenerator(mask)

	case "brute":
		charsetStr := viper.GetString("charset")
		if charsetStr == "" {
			charsetStr = defaultCharset
		}
		minLen := viper.GetInt("min-len")
		maxLen := viper.GetInt("max-len")
		return candidate.NewBruteForceGenerator(candidate.FromString(charsetStr), minLen, maxLen), nil

	case "hybrid":
		// combined dictionary+mask search is not implemented yet.
		return nil, &engine.ConfigError{Reason: "hybrid strategy not yet implemented"}

	default:
		return nil, &engine.ConfigError{Reason: fmt.Sprintf("unknown strategy: %s", strategy)}
	}
}
